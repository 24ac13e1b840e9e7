package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/internal/core/ports/mocks"
	"github.com/Dulllu/netsasa/pkg/apperror"
)

type checkoutTestDeps struct {
	svc       *CheckoutService
	registry  *mocks.MockCheckoutRegistry
	repo      *mocks.MockTransactionRepository
	gateway   *mocks.MockGatewayClient
	scheduler *mocks.MockAutoCancelScheduler
	notifier  *mocks.MockStatusNotifier
	ctrl      *gomock.Controller
}

func setupCheckoutService(t *testing.T) *checkoutTestDeps {
	ctrl := gomock.NewController(t)
	d := &checkoutTestDeps{
		registry:  mocks.NewMockCheckoutRegistry(ctrl),
		repo:      mocks.NewMockTransactionRepository(ctrl),
		gateway:   mocks.NewMockGatewayClient(ctrl),
		scheduler: mocks.NewMockAutoCancelScheduler(ctrl),
		notifier:  mocks.NewMockStatusNotifier(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewCheckoutService(
		d.registry, d.repo, d.gateway, d.scheduler, d.notifier,
		domain.DefaultCatalog(), "NETSASA", zerolog.Nop(),
	)
	return d
}

// ==================== Initiate Tests ====================

func TestCheckoutService_Initiate_Success(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.InitiateRequest{Phone: "0712345678", Amount: 60, PackageID: "p5"}

	d.gateway.EXPECT().
		Push(ctx, "254712345678", int64(60), "NETSASA", "WiFi Siku 1 Day").
		Return(&ports.GatewayAck{
			CheckoutRequestID:    "ws_CO_1",
			GatewayTransactionID: "TXN_9",
			CustomerMessage:      "Enter your M-Pesa PIN",
		}, nil)
	d.registry.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Checkout) error {
		assert.Equal(t, "ws_CO_1", c.CheckoutID)
		assert.Equal(t, "0712345678", c.Phone)
		assert.Equal(t, domain.StatusPending, c.Status)
		return nil
	})
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.scheduler.EXPECT().Schedule("ws_CO_1")

	result, err := d.svc.Initiate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_1", result.CheckoutRequestID)
	assert.Equal(t, "TXN_9", result.GatewayTransactionID)
	assert.Equal(t, "Enter your M-Pesa PIN", result.Message)
}

func TestCheckoutService_Initiate_DefaultMessage(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.gateway.EXPECT().
		Push(ctx, "254712345678", int64(20), "NETSASA", "NETSASA WiFi").
		Return(&ports.GatewayAck{CheckoutRequestID: "ws_CO_2"}, nil)
	d.registry.EXPECT().Create(gomock.Any()).Return(nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.scheduler.EXPECT().Schedule("ws_CO_2")

	result, err := d.svc.Initiate(ctx, ports.InitiateRequest{Phone: "0712345678", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, defaultCustomerMessage, result.Message)
}

func TestCheckoutService_Initiate_UnknownPackage(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Initiate(context.Background(), ports.InitiateRequest{
		Phone: "0712345678", Amount: 20, PackageID: "p99",
	})
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestCheckoutService_Initiate_GatewayError(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().
		Push(ctx, "254712345678", int64(20), "NETSASA", "NETSASA WiFi").
		Return(nil, apperror.ErrGatewayRejected("Insufficient merchant float"))

	_, err := d.svc.Initiate(ctx, ports.InitiateRequest{Phone: "0712345678", Amount: 20})
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GW_002", appErr.Code)
}

func TestCheckoutService_Initiate_PersistFailureIsNonFatal(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.gateway.EXPECT().
		Push(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.GatewayAck{CheckoutRequestID: "ws_CO_3"}, nil)
	d.registry.EXPECT().Create(gomock.Any()).Return(nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))
	d.scheduler.EXPECT().Schedule("ws_CO_3")

	result, err := d.svc.Initiate(ctx, ports.InitiateRequest{Phone: "0712345678", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_3", result.CheckoutRequestID)
}

// ==================== Check Tests ====================

func TestCheckoutService_Check_FromRegistry(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().Get("ws_CO_1").Return(&domain.Checkout{
		CheckoutID: "ws_CO_1", Status: domain.StatusPending,
	}, nil)

	got, err := d.svc.Check(context.Background(), "ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestCheckoutService_Check_FallsBackToHistory(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.registry.EXPECT().Get("ws_old").Return(nil, apperror.ErrCheckoutNotFound())
	d.repo.EXPECT().GetByCheckoutID(ctx, "ws_old").Return(&domain.Checkout{
		CheckoutID: "ws_old", Status: domain.StatusSuccess,
	}, nil)

	got, err := d.svc.Check(ctx, "ws_old")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
}

func TestCheckoutService_Check_NotFound(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.registry.EXPECT().Get("ws_missing").Return(nil, apperror.ErrCheckoutNotFound())
	d.repo.EXPECT().GetByCheckoutID(ctx, "ws_missing").Return(nil, nil)

	_, err := d.svc.Check(ctx, "ws_missing")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAY_001", appErr.Code)
}

// ==================== Expire Tests ====================

func TestCheckoutService_Expire_CancelsPending(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	now := time.Now().UTC()
	snapshot := &domain.Checkout{
		CheckoutID: "ws_CO_1", Status: domain.StatusCancelled, CompletedAt: &now,
	}
	d.registry.EXPECT().
		ApplyTerminal("ws_CO_1", domain.StatusCancelled, gomock.Any()).
		Return(true, snapshot)
	d.repo.EXPECT().MarkTerminal(gomock.Any(), snapshot).Return(nil)
	d.notifier.EXPECT().Publish("ws_CO_1", domain.StatusEvent{
		Status: domain.StatusCancelled,
		Reason: domain.ReasonTimeout,
	})

	d.svc.Expire("ws_CO_1")
}

func TestCheckoutService_Expire_AlreadyTerminalIsNoOp(t *testing.T) {
	d := setupCheckoutService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().
		ApplyTerminal("ws_CO_1", domain.StatusCancelled, gomock.Any()).
		Return(false, nil)

	// No persistence, no event.
	d.svc.Expire("ws_CO_1")
}
