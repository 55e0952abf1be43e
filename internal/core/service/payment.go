package service

import (
	"context"
	"errors"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"go.uber.org/zap"
)

// CreateGatewayOrder asks the gateway to authorize a charge for an existing
// pending order. The amount is always the persisted order total; nothing from
// the request body is trusted. Calling it again for the same order returns
// the stored gateway reference instead of minting a second one.
func (s *Service) CreateGatewayOrder(ctx context.Context, userID uint64, orderID string) (*port.GatewayOrder, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if order.PaymentStatus != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentAlreadyVerified
	}

	amount, err := MinorUnits(order.TotalAmount)
	if err != nil {
		s.logger.Error("Convert order total", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.GatewayOrderID != "" {
		return &port.GatewayOrder{
			ID:       order.GatewayOrderID,
			Amount:   amount,
			Currency: Currency,
			Receipt:  "order_" + order.ID,
		}, nil
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, Currency, "order_"+order.ID)
	if err != nil {
		s.logger.Error("Create gateway order", zap.Error(err), zap.String("order", order.ID))
		return nil, domain.ErrGatewayUnavailable
	}

	if err := s.repo.SetGatewayOrder(ctx, order.ID, gatewayOrder.ID); err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			// A concurrent call won; its reference is the one that counts.
			return nil, domain.ErrPaymentAlreadyVerified
		}
		s.logger.Error("Persist gateway order", zap.Error(err), zap.String("order", order.ID))
		return nil, domain.ErrInternal
	}

	return gatewayOrder, nil
}

// VerifyPayment settles a pending order. Every fact used to authorize the
// paid transition is either recomputed locally (the signature) or fetched
// server-to-server from the gateway (captured status and amount); the request
// body supplies inputs to be checked, never believed. Integrity failures
// leave the order pending so a legitimate retry still can succeed.
func (s *Service) VerifyPayment(ctx context.Context, userID uint64, input port.VerifyPaymentInput) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if order.PaymentStatus != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentAlreadyVerified
	}
	if order.GatewayOrderID == "" {
		return nil, domain.ErrNoGatewayOrder
	}

	// A valid signature for somebody else's gateway order proves nothing.
	if input.GatewayOrderID != order.GatewayOrderID {
		s.tamperWarn(order, userID, "gateway order id does not belong to order")
		return nil, domain.ErrSignatureMismatch
	}

	if !s.gateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature) {
		s.tamperWarn(order, userID, "signature mismatch")
		return nil, domain.ErrSignatureMismatch
	}

	payment, err := s.gateway.FetchPayment(ctx, input.GatewayPaymentID)
	if err != nil {
		s.logger.Error("Fetch gateway payment", zap.Error(err), zap.String("order", order.ID))
		return nil, domain.ErrGatewayUnavailable
	}

	if payment.OrderID != order.GatewayOrderID {
		s.tamperWarn(order, userID, "payment belongs to a different gateway order")
		return nil, domain.ErrSignatureMismatch
	}
	if payment.Status != port.GatewayPaymentCaptured {
		return nil, domain.ErrPaymentNotCaptured
	}

	expected, err := MinorUnits(order.TotalAmount)
	if err != nil {
		s.logger.Error("Convert order total", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if payment.Amount != expected || payment.Currency != Currency {
		s.tamperWarn(order, userID, "captured amount does not match order total")
		return nil, domain.ErrAmountMismatch
	}

	// Single conditional update: flips only while still pending, so of two
	// concurrent verifications exactly one wins.
	err = s.repo.MarkOrderPaid(ctx, order.ID, input.GatewayPaymentID, input.GatewaySignature)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return nil, domain.ErrPaymentAlreadyVerified
		}
		s.logger.Error("Mark order paid", zap.Error(err), zap.String("order", order.ID))
		return nil, domain.ErrInternal
	}

	order.PaymentStatus = domain.PaymentStatusPaid
	order.GatewayPaymentID = input.GatewayPaymentID
	order.GatewaySignature = input.GatewaySignature

	s.logger.Info("Payment verified",
		zap.String("order", order.ID),
		zap.String("gateway_payment", payment.ID),
		zap.Int64("amount", payment.Amount))

	return order, nil
}

func (s *Service) GetGatewayPayment(ctx context.Context, paymentID string) (*port.GatewayPayment, error) {
	payment, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		s.logger.Error("Fetch gateway payment", zap.Error(err))
		return nil, domain.ErrGatewayUnavailable
	}
	return payment, nil
}

// tamperWarn logs a failed integrity check. These are potential tampering
// signals and must never be swallowed silently.
func (s *Service) tamperWarn(order *domain.Order, userID uint64, reason string) {
	s.logger.Warn("Payment verification rejected",
		zap.String("order", order.ID),
		zap.Uint64("user", userID),
		zap.String("gateway_order", order.GatewayOrderID),
		zap.String("reason", reason))
}
