package domain

// Package is one purchasable Wi-Fi plan. The catalog is configuration data:
// variation between deployments is price tables, not code.
type Package struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Minutes     int    `json:"minutes,omitempty"`
	DataMB      int    `json:"data_mb,omitempty"`
	SpeedMbps   int    `json:"speed_mbps"`
	MaxDevices  int    `json:"max_devices"`
	Type        string `json:"type"` // hourly, daily, weekly, monthly, special
}

// Catalog is an ordered, read-only package table.
type Catalog []Package

// Find returns the package with the given id.
func (c Catalog) Find(id string) (Package, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// DefaultCatalog returns the stock NETSASA package table.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "p1", Name: "Mwangaza 20", Description: "Quick browse & messages", Price: 5, Minutes: 20, SpeedMbps: 10, MaxDevices: 1, Type: "hourly"},
		{ID: "p2", Name: "Sawa 50", Description: "Light browsing & social", Price: 10, Minutes: 50, SpeedMbps: 10, MaxDevices: 2, Type: "hourly"},
		{ID: "p3", Name: "Leo 1hr", Description: "Streaming lite & browsing", Price: 20, Minutes: 60, SpeedMbps: 15, MaxDevices: 2, Type: "hourly"},
		{ID: "p4", Name: "Kipindi 3hr", Description: "Study session", Price: 50, Minutes: 180, SpeedMbps: 20, MaxDevices: 3, Type: "hourly"},
		{ID: "p5", Name: "Siku 1 Day", Description: "All-day access", Price: 60, Minutes: 1440, SpeedMbps: 15, MaxDevices: 3, Type: "daily"},
		{ID: "p6", Name: "Usiku", Description: "Night pack (21:00-06:00)", Price: 40, Minutes: 540, SpeedMbps: 10, MaxDevices: 2, Type: "special"},
		{ID: "p7", Name: "Social 1hr", Description: "Social apps only", Price: 15, Minutes: 60, SpeedMbps: 10, MaxDevices: 1, Type: "hourly"},
		{ID: "p8", Name: "DataLite 800MB", Description: "Small data bundle", Price: 30, DataMB: 800, SpeedMbps: 10, MaxDevices: 1, Type: "special"},
		{ID: "p9", Name: "Weekend 48hr", Description: "Weekend surf", Price: 150, Minutes: 2880, SpeedMbps: 20, MaxDevices: 4, Type: "special"},
		{ID: "p10", Name: "Wiki 7 Day", Description: "Weekly plan for heavy users", Price: 400, Minutes: 10080, SpeedMbps: 25, MaxDevices: 5, Type: "weekly"},
	}
}
