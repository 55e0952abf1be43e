package service

import (
	"context"
	"errors"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetCart(ctx context.Context, userID uint64) ([]*domain.CartItem, error) {
	items, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		s.logger.Error("List cart", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return items, nil
}

// AddToCart merges quantity into an existing line when the same product,
// size and color is already in the cart.
func (s *Service) AddToCart(ctx context.Context, item *domain.CartItem) ([]*domain.CartItem, error) {
	if item.Quantity < 1 {
		return nil, domain.ErrBadQuantity
	}

	// Reject references to products that do not exist.
	if _, err := s.repo.GetProductByID(ctx, item.ProductID); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertCartItem(ctx, item); err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetCart(ctx, item.UserID)
}

func (s *Service) UpdateCartItem(ctx context.Context, userID, itemID uint64, quantity uint32) ([]*domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.ErrBadQuantity
	}

	err := s.repo.UpdateCartItemQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Update cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetCart(ctx, userID)
}

func (s *Service) RemoveCartItem(ctx context.Context, userID, itemID uint64) ([]*domain.CartItem, error) {
	if err := s.repo.DeleteCartItem(ctx, userID, itemID); err != nil {
		s.logger.Error("Delete cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return s.GetCart(ctx, userID)
}

func (s *Service) ClearCart(ctx context.Context, userID uint64) error {
	if err := s.repo.ClearCart(ctx, userID); err != nil {
		s.logger.Error("Clear cart", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
