package service_test

import (
	"context"
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port/mock"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, mockCtrl *gomock.Controller,
	prepare func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway)) *service.Service {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	gateway := mock.NewMockPaymentGateway(mockCtrl)
	if prepare != nil {
		prepare(repo, gateway)
	}

	s, err := service.NewService(repo,
		mock.NewMockTokenService(mockCtrl),
		mock.NewMockGoogleVerifier(mockCtrl),
		gateway,
		mock.NewMockCatalogCache(mockCtrl),
		zap.NewNop())
	require.NoError(t, err)
	return s
}

var testAddress = domain.Address{
	FirstName:  "Asha",
	Email:      "asha@example.com",
	Phone:      "9876543210",
	Street:     "12 MG Road",
	City:       "Bengaluru",
	State:      "Karnataka",
	PostalCode: "560001",
	Country:    "IN",
}

func TestService_PlaceOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sneaker := &domain.Product{
		ID:    10,
		Name:  "Runner Sneaker",
		Price: decimal.MustParse("500"),
	}
	// Offer price beats list price for the snapshot.
	tee := &domain.Product{
		ID:         20,
		Name:       "Graphic Tee",
		Price:      decimal.MustParse("450"),
		OfferPrice: decimal.MustParse("300"),
	}

	s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(10)).Return(sneaker, nil)
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(20)).Return(tee, nil)
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
	})

	order, err := s.PlaceOrder(context.Background(), 1, []port.NewOrderItem{
		{ProductID: 10, Size: "42", Quantity: 2},
		{ProductID: 20, Size: "M", Quantity: 1},
	}, testAddress)

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, uint64(1), order.UserID)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, domain.OrderStatusProcessing, order.OrderStatus)
	assert.Zero(t, order.TotalAmount.Cmp(decimal.MustParse("1300")),
		"got total %s", order.TotalAmount)

	require.Len(t, order.Items, 2)
	assert.Zero(t, order.Items[0].UnitPrice.Cmp(decimal.MustParse("500")))
	assert.Zero(t, order.Items[1].UnitPrice.Cmp(decimal.MustParse("300")))
}

func TestService_PlaceOrderValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		items    []port.NewOrderItem
		address  domain.Address
		mock     func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway)
		expError error
	}{
		{
			name:     "empty order",
			items:    nil,
			address:  testAddress,
			expError: domain.ErrEmptyOrder,
		},
		{
			name:     "missing address",
			items:    []port.NewOrderItem{{ProductID: 10, Quantity: 1}},
			address:  domain.Address{},
			expError: domain.ErrAddressRequired,
		},
		{
			name:     "zero quantity",
			items:    []port.NewOrderItem{{ProductID: 10, Quantity: 0}},
			address:  testAddress,
			expError: domain.ErrBadQuantity,
		},
		{
			name:    "unknown product",
			items:   []port.NewOrderItem{{ProductID: 99, Quantity: 1}},
			address: testAddress,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().GetProductByID(gomock.Any(), uint64(99)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, test.mock)

			_, err := s.PlaceOrder(context.Background(), 1, test.items, test.address)
			assert.ErrorIs(t, err, test.expError)
		})
	}
}

func TestService_GetOrderOwnership(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{ID: "ord-1", UserID: 1}

	s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
		repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(order, nil).Times(2)
	})

	got, err := s.GetOrder(context.Background(), 1, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = s.GetOrder(context.Background(), 2, "ord-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		order    *domain.Order
		mock     func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway)
		expError error
	}{
		{
			name: "pending processing order cancels",
			order: &domain.Order{ID: "ord-1", UserID: 1,
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPending},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), "ord-1",
					domain.OrderStatusProcessing, domain.OrderStatusCancelled).Return(nil)
			},
		},
		{
			name: "paid order is not cancellable",
			order: &domain.Order{ID: "ord-1", UserID: 1,
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPaid},
			expError: domain.ErrOrderNotCancellable,
		},
		{
			name: "shipped order is not cancellable",
			order: &domain.Order{ID: "ord-1", UserID: 1,
				OrderStatus: domain.OrderStatusShipped, PaymentStatus: domain.PaymentStatusPending},
			expError: domain.ErrOrderNotCancellable,
		},
		{
			name: "lost race is reported as not cancellable",
			order: &domain.Order{ID: "ord-1", UserID: 1,
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPending},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), "ord-1",
					domain.OrderStatusProcessing, domain.OrderStatusCancelled).
					Return(domain.ErrNoUpdatedData)
			},
			expError: domain.ErrOrderNotCancellable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(test.order, nil)
				if test.mock != nil {
					test.mock(repo, gateway)
				}
			})

			order, err := s.CancelOrder(context.Background(), 1, "ord-1")

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatusCancelled, order.OrderStatus)
		})
	}
}

func TestService_AdminUpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name          string
		order         *domain.Order
		orderStatus   domain.OrderStatus
		paymentStatus domain.PaymentStatus
		mock          func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway)
		expError      error
	}{
		{
			name: "processing to shipped",
			order: &domain.Order{ID: "ord-1",
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPaid},
			orderStatus: domain.OrderStatusShipped,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), "ord-1",
					domain.OrderStatusProcessing, domain.OrderStatusShipped).Return(nil)
			},
		},
		{
			name: "delivered cannot go back to processing",
			order: &domain.Order{ID: "ord-1",
				OrderStatus: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid},
			orderStatus: domain.OrderStatusProcessing,
			expError:    domain.ErrInvalidTransition,
		},
		{
			name: "admin cannot mark paid by hand",
			order: &domain.Order{ID: "ord-1",
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPending},
			paymentStatus: domain.PaymentStatusPaid,
			expError:      domain.ErrInvalidTransition,
		},
		{
			name: "pending payment may be failed",
			order: &domain.Order{ID: "ord-1",
				OrderStatus: domain.OrderStatusProcessing, PaymentStatus: domain.PaymentStatusPending},
			paymentStatus: domain.PaymentStatusFailed,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ord-1",
					domain.PaymentStatusPending, domain.PaymentStatusFailed).Return(nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().ReadOrder(gomock.Any(), "ord-1").Return(test.order, nil)
				if test.mock != nil {
					test.mock(repo, gateway)
				}
			})

			_, err := s.AdminUpdateOrderStatus(context.Background(), "ord-1",
				test.orderStatus, test.paymentStatus)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
