package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGatewayOrderID   = "order_Nx9QZkD7f3a1bC"
	testGatewayPaymentID = "pay_29QQoUBi66xm2f"
	testSignature        = "05d3c971ede99c4f9066f4dc10e2fde64e3920d421145aa209e3c1ff1c50d461"
)

// pendingOrder returns a fresh pending order worth 1300 INR with a gateway
// order already opened.
func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:             "ord-1",
		UserID:         1,
		TotalAmount:    decimal.MustParse("1300"),
		PaymentStatus:  domain.PaymentStatusPending,
		OrderStatus:    domain.OrderStatusProcessing,
		GatewayOrderID: testGatewayOrderID,
	}
}

func capturedPayment() *port.GatewayPayment {
	return &port.GatewayPayment{
		ID:       testGatewayPaymentID,
		OrderID:  testGatewayOrderID,
		Amount:   130000,
		Currency: "INR",
		Status:   port.GatewayPaymentCaptured,
	}
}

func verifyInput() port.VerifyPaymentInput {
	return port.VerifyPaymentInput{
		OrderID:          "ord-1",
		GatewayOrderID:   testGatewayOrderID,
		GatewayPaymentID: testGatewayPaymentID,
		GatewaySignature: testSignature,
	}
}

func TestService_CreateGatewayOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("opens a gateway order for the persisted total", func(t *testing.T) {
		order := pendingOrder()
		order.GatewayOrderID = ""

		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil)
			gateway.EXPECT().CreateOrder(gomock.Any(), int64(130000), "INR", "order_ord-1").
				Return(&port.GatewayOrder{
					ID:       testGatewayOrderID,
					Amount:   130000,
					Currency: "INR",
					Receipt:  "order_ord-1",
					Status:   "created",
				}, nil)
			repo.EXPECT().SetGatewayOrder(gomock.Any(), "ord-1", testGatewayOrderID).Return(nil)
		})

		gatewayOrder, err := s.CreateGatewayOrder(context.Background(), 1, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, testGatewayOrderID, gatewayOrder.ID)
		assert.Equal(t, int64(130000), gatewayOrder.Amount)
	})

	t.Run("repeat call returns the stored reference", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			// No gateway call and no write.
		})

		gatewayOrder, err := s.CreateGatewayOrder(context.Background(), 1, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, testGatewayOrderID, gatewayOrder.ID)
		assert.Equal(t, int64(130000), gatewayOrder.Amount)
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		})

		_, err := s.CreateGatewayOrder(context.Background(), 2, "ord-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("settled order is refused", func(t *testing.T) {
		order := pendingOrder()
		order.PaymentStatus = domain.PaymentStatusPaid

		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil)
		})

		_, err := s.CreateGatewayOrder(context.Background(), 1, "ord-1")
		assert.ErrorIs(t, err, domain.ErrPaymentAlreadyVerified)
	})

	t.Run("gateway failure maps to unavailable", func(t *testing.T) {
		order := pendingOrder()
		order.GatewayOrderID = ""

		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil)
			gateway.EXPECT().CreateOrder(gomock.Any(), int64(130000), "INR", "order_ord-1").
				Return(nil, errors.New("connection refused"))
		})

		_, err := s.CreateGatewayOrder(context.Background(), 1, "ord-1")
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})
}

func TestService_VerifyPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("settles a pending order", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).
				Return(capturedPayment(), nil)
			repo.EXPECT().MarkOrderPaid(gomock.Any(), "ord-1", testGatewayPaymentID, testSignature).
				Return(nil)
		})

		order, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
		assert.Equal(t, testGatewayPaymentID, order.GatewayPaymentID)
		assert.Equal(t, testSignature, order.GatewaySignature)
	})

	t.Run("bad signature leaves the order pending", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, "forged").
				Return(false)
			// No fetch, no write.
		})

		input := verifyInput()
		input.GatewaySignature = "forged"

		_, err := s.VerifyPayment(context.Background(), 1, input)
		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("gateway order id not belonging to the order is rejected before crypto", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		})

		input := verifyInput()
		input.GatewayOrderID = "order_someoneElse"

		_, err := s.VerifyPayment(context.Background(), 1, input)
		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("payment for a different gateway order is rejected", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			payment := capturedPayment()
			payment.OrderID = "order_someoneElse"
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).Return(payment, nil)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("authorized but not captured payment is rejected", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			payment := capturedPayment()
			payment.Status = "authorized"
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).Return(payment, nil)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrPaymentNotCaptured)
	})

	t.Run("captured amount below the order total is rejected", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			payment := capturedPayment()
			payment.Amount = 100
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).Return(payment, nil)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrAmountMismatch)
	})

	t.Run("unreachable gateway maps to unavailable", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).
				Return(nil, errors.New("timeout"))
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})

	t.Run("already settled order conflicts without touching the gateway", func(t *testing.T) {
		order := pendingOrder()
		order.PaymentStatus = domain.PaymentStatusPaid

		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrPaymentAlreadyVerified)
	})

	t.Run("order without a gateway order cannot verify", func(t *testing.T) {
		order := pendingOrder()
		order.GatewayOrderID = ""

		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrNoGatewayOrder)
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		})

		_, err := s.VerifyPayment(context.Background(), 2, verifyInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("losing the settle race reports already verified", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			gateway.EXPECT().VerifySignature(testGatewayOrderID, testGatewayPaymentID, testSignature).
				Return(true)
			gateway.EXPECT().FetchPayment(gomock.Any(), testGatewayPaymentID).
				Return(capturedPayment(), nil)
			repo.EXPECT().MarkOrderPaid(gomock.Any(), "ord-1", testGatewayPaymentID, testSignature).
				Return(domain.ErrNoUpdatedData)
		})

		_, err := s.VerifyPayment(context.Background(), 1, verifyInput())
		assert.ErrorIs(t, err, domain.ErrPaymentAlreadyVerified)
	})
}
