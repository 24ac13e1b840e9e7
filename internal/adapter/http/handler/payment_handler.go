package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dulllu/netsasa/internal/adapter/http/dto"
	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
	"github.com/Dulllu/netsasa/pkg/phone"
	"github.com/Dulllu/netsasa/pkg/response"
)

// PaymentHandler handles the portal-facing payment endpoints.
type PaymentHandler struct {
	checkoutSvc ports.CheckoutService
	catalog     domain.Catalog
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(checkoutSvc ports.CheckoutService, catalog domain.Catalog) *PaymentHandler {
	return &PaymentHandler{checkoutSvc: checkoutSvc, catalog: catalog}
}

// Pay handles POST /api/pay.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.Contains(err.Error(), "msisdn") {
			response.Error(c, apperror.ErrInvalidPhone())
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	normalized, ok := phone.Normalize(req.Phone)
	if !ok {
		response.Error(c, apperror.ErrInvalidPhone())
		return
	}

	result, err := h.checkoutSvc.Initiate(c.Request.Context(), ports.InitiateRequest{
		Phone:     normalized,
		Amount:    req.Amount,
		PackageID: req.PackageID,
	})
	if err != nil {
		// Gateway failures come back as 200 {success:false} so the portal
		// page can render them inline; everything else is a proper error.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && strings.HasPrefix(appErr.Code, "GW_") {
			response.OK(c, dto.PayResponse{Success: false, Error: appErr.Message})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PayResponse{
		Success:           true,
		CheckoutRequestID: result.CheckoutRequestID,
		TransactionID:     result.GatewayTransactionID,
		Message:           result.Message,
	})
}

// Check handles GET /api/check/:checkout_id.
func (h *PaymentHandler) Check(c *gin.Context) {
	checkout, err := h.checkoutSvc.Check(c.Request.Context(), c.Param("checkout_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCheckResponse(checkout))
}

// Transactions handles GET /api/transactions/:phone.
func (h *PaymentHandler) Transactions(c *gin.Context) {
	normalized, ok := phone.Normalize(c.Param("phone"))
	if !ok {
		response.Error(c, apperror.ErrInvalidPhone())
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	checkouts, err := h.checkoutSvc.ListByPhone(c.Request.Context(), normalized, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTransactionList(normalized, checkouts))
}

// Packages handles GET /api/packages.
func (h *PaymentHandler) Packages(c *gin.Context) {
	response.OK(c, dto.PackageListResponse{Packages: h.catalog})
}
