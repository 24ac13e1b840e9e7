package handler

import (
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/response"
)

// pingEvent keeps intermediaries from closing an idle SSE connection.
type pingEvent struct {
	Type string `json:"type"`
}

// StreamHandler pushes live checkout status over Server-Sent Events.
type StreamHandler struct {
	checkoutSvc ports.CheckoutService
	notifier    ports.StatusNotifier
	idleTimeout time.Duration
	maxPings    int
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(checkoutSvc ports.CheckoutService, notifier ports.StatusNotifier, idleTimeout time.Duration, maxPings int) *StreamHandler {
	return &StreamHandler{
		checkoutSvc: checkoutSvc,
		notifier:    notifier,
		idleTimeout: idleTimeout,
		maxPings:    maxPings,
	}
}

// Stream handles GET /api/stream/:checkout_id. The first frame is always
// the current status, so a client reconnecting after a missed webhook still
// converges; the stream ends on a terminal status, client disconnect, or
// after the ping budget is spent.
func (h *StreamHandler) Stream(c *gin.Context) {
	checkoutID := c.Param("checkout_id")

	// Subscribe before the snapshot read so no transition slips between
	// the two.
	events, release := h.notifier.Subscribe(checkoutID)
	defer release()

	checkout, err := h.checkoutSvc.Check(c.Request.Context(), checkoutID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	write := func(data any) bool {
		if err := sse.Encode(c.Writer, sse.Event{Data: data}); err != nil {
			return false
		}
		c.Writer.Flush()
		return true
	}

	first := domain.StatusEvent{Status: checkout.Status, Receipt: checkout.ReceiptNumber}
	if !write(first) || first.Status.IsTerminal() {
		return
	}

	pings := 0
	idle := time.NewTimer(h.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return

		case ev := <-events:
			if !write(ev) {
				return
			}
			if ev.Status.IsTerminal() {
				return
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(h.idleTimeout)

		case <-idle.C:
			pings++
			if pings > h.maxPings {
				return
			}
			if !write(pingEvent{Type: "ping"}) {
				return
			}
			idle.Reset(h.idleTimeout)
		}
	}
}
