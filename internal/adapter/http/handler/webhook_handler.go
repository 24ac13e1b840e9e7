package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Dulllu/netsasa/internal/adapter/http/dto"
	"github.com/Dulllu/netsasa/internal/adapter/http/middleware"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
	"github.com/Dulllu/netsasa/pkg/response"
)

// WebhookHandler receives asynchronous callbacks from the payment gateway.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Handle handles POST /api/webhook. The raw body is passed through
// untouched because the signature covers the exact bytes on the wire. Apart
// from a bad signature, the gateway always gets 200 {received:true} so it
// never retries.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	signature := c.GetHeader(middleware.HeaderSignature)
	if err := h.webhookSvc.Process(c.Request.Context(), body, signature); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WebhookAck{Received: true})
}
