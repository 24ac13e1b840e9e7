package handler

import (
	"crypto/subtle"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/adapter/http/dto"
	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
	"github.com/Dulllu/netsasa/pkg/response"
)

// VendorHandler serves the vendor dashboard: login plus reporting over the
// persisted checkout history.
type VendorHandler struct {
	repo         ports.TransactionRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	username     string
	passwordHash string
	log          zerolog.Logger
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(
	repo ports.TransactionRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	username, passwordHash string,
	log zerolog.Logger,
) *VendorHandler {
	return &VendorHandler{
		repo:         repo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		username:     username,
		passwordHash: passwordHash,
		log:          log,
	}
}

// Login handles POST /api/vendor/login.
func (h *VendorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) != 1 {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}
	ok, err := h.hashSvc.Verify(req.Password, h.passwordHash)
	if err != nil || !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(h.username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	h.log.Info().Str("username", h.username).Msg("vendor logged in")
	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiresAt.Unix()})
}

// Stats handles GET /api/vendor/stats.
func (h *VendorHandler) Stats(c *gin.Context) {
	stats, err := h.repo.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, dto.StatsResponse{
		Total:        stats.Total,
		Successful:   stats.Successful,
		Failed:       stats.Failed,
		Cancelled:    stats.Cancelled,
		TotalRevenue: stats.TotalRevenue,
	})
}

// Transactions handles GET /api/vendor/transactions.
func (h *VendorHandler) Transactions(c *gin.Context) {
	params := ports.CheckoutListParams{Page: 1, PageSize: 20}

	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			params.Page = n
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			params.PageSize = n
		}
	}
	if raw := c.Query("status"); raw != "" {
		s := domain.Status(raw)
		params.Status = &s
	}
	if raw := c.Query("phone"); raw != "" {
		params.Phone = &raw
	}

	checkouts, total, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.CheckResponse, 0, len(checkouts))
	for i := range checkouts {
		items = append(items, dto.NewCheckResponse(&checkouts[i]))
	}
	response.OK(c, dto.VendorTransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         params.Page,
		PageSize:     params.PageSize,
	})
}
