package service

import (
	"context"
	"errors"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetWishlist(ctx context.Context, userID uint64) ([]*domain.Product, error) {
	list, err := s.repo.ListWishlist(ctx, userID)
	if err != nil {
		s.logger.Error("List wishlist", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) AddToWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, error) {
	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.repo.AddWishlistItem(ctx, userID, productID); err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrAlreadyInWishlist
		}
		s.logger.Error("Add wishlist item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetWishlist(ctx, userID)
}

func (s *Service) RemoveFromWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, error) {
	if err := s.repo.RemoveWishlistItem(ctx, userID, productID); err != nil {
		s.logger.Error("Remove wishlist item", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return s.GetWishlist(ctx, userID)
}

// ToggleWishlist adds the product when absent and removes it when present.
// The second return value reports whether the product ended up added.
func (s *Service) ToggleWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, bool, error) {
	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		return nil, false, err
	}

	present, err := s.repo.InWishlist(ctx, userID, productID)
	if err != nil {
		s.logger.Error("Check wishlist", zap.Error(err))
		return nil, false, domain.ErrInternal
	}

	if present {
		err = s.repo.RemoveWishlistItem(ctx, userID, productID)
	} else {
		err = s.repo.AddWishlistItem(ctx, userID, productID)
	}
	if err != nil {
		s.logger.Error("Toggle wishlist", zap.Error(err))
		return nil, false, domain.ErrInternal
	}

	list, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return list, !present, nil
}
