package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlaceOrder creates a pending order. Every unit price is read from the
// catalog at this moment; client-supplied prices or totals are never used.
func (s *Service) PlaceOrder(ctx context.Context, userID uint64, items []port.NewOrderItem, address domain.Address) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if address == (domain.Address{}) {
		return nil, domain.ErrAddressRequired
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domain.ErrBadQuantity
		}
		product, err := s.repo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    item.Quantity,
			UnitPrice:   product.UnitPrice(),
		})
	}

	total, err := OrderTotal(orderItems)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         orderItems,
		Address:       address,
		TotalAmount:   total,
		PaymentStatus: domain.PaymentStatusPending,
		OrderStatus:   domain.OrderStatusProcessing,
		CreatedAt:     time.Now(),
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newOrder, nil
}

func (s *Service) ListOrders(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) GetOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// CancelOrder transitions processing orders to cancelled. Paid orders are
// refused: those need a refund, not a cancellation.
func (s *Service) CancelOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return s.cancel(ctx, order)
}

func (s *Service) cancel(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if !order.Cancellable() {
		return nil, domain.ErrOrderNotCancellable
	}

	err := s.repo.UpdateOrderStatus(ctx, order.ID, order.OrderStatus, domain.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			// Lost the race against a concurrent transition.
			return nil, domain.ErrOrderNotCancellable
		}
		s.logger.Error("Cancel order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order.OrderStatus = domain.OrderStatusCancelled
	return order, nil
}

func (s *Service) AdminListOrders(ctx context.Context, filter domain.AdminOrderFilter) ([]*domain.Order, uint64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 12
	}

	list, total, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("Admin list orders", zap.Error(err))
		return nil, 0, domain.ErrInternal
	}
	return list, total, nil
}

func (s *Service) AdminGetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

// AdminUpdateOrderStatus applies fulfilment and payment status changes,
// refusing anything but forward transitions. Pass empty values for fields
// that should not change.
func (s *Service) AdminUpdateOrderStatus(ctx context.Context, orderID string, orderStatus domain.OrderStatus, paymentStatus domain.PaymentStatus) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if orderStatus != "" && orderStatus != order.OrderStatus {
		if orderStatus == domain.OrderStatusCancelled {
			return s.cancel(ctx, order)
		}
		if !order.OrderStatus.CanTransition(orderStatus) {
			return nil, domain.ErrInvalidTransition
		}
		if err := s.repo.UpdateOrderStatus(ctx, orderID, order.OrderStatus, orderStatus); err != nil {
			if errors.Is(err, domain.ErrNoUpdatedData) {
				return nil, domain.ErrInvalidTransition
			}
			s.logger.Error("Update order status", zap.Error(err))
			return nil, domain.ErrInternal
		}
		order.OrderStatus = orderStatus
	}

	if paymentStatus != "" && paymentStatus != order.PaymentStatus {
		// Marking paid bypasses reconciliation, admins do not get that.
		if paymentStatus == domain.PaymentStatusPaid {
			return nil, domain.ErrInvalidTransition
		}
		if !order.PaymentStatus.CanTransition(paymentStatus) {
			return nil, domain.ErrInvalidTransition
		}
		if err := s.repo.UpdatePaymentStatus(ctx, orderID, order.PaymentStatus, paymentStatus); err != nil {
			if errors.Is(err, domain.ErrNoUpdatedData) {
				return nil, domain.ErrInvalidTransition
			}
			s.logger.Error("Update payment status", zap.Error(err))
			return nil, domain.ErrInternal
		}
		order.PaymentStatus = paymentStatus
	}

	return order, nil
}

func (s *Service) AdminCancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, order)
}

func (s *Service) OrderStats(ctx context.Context) (*domain.OrderStats, error) {
	stats, err := s.repo.OrderStats(ctx)
	if err != nil {
		s.logger.Error("Order stats", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return stats, nil
}
