package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/utils"
	"go.uber.org/zap"
)

const productCacheTTL = 5 * time.Minute

func productCacheKey(id uint64) string  { return fmt.Sprintf("product:id:%d", id) }
func productSlugKey(slug string) string { return "product:slug:" + slug }

func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, uint64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	list, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, 0, domain.ErrInternal
	}
	return list, total, nil
}

func (s *Service) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	if cached := s.cachedProduct(ctx, productCacheKey(id)); cached != nil {
		return cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Get product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.cacheProduct(ctx, productCacheKey(id), product)
	return product, nil
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	// Stored slugs are canonical, normalize the URL input to the same form.
	slug = utils.Slugify(slug)

	if cached := s.cachedProduct(ctx, productSlugKey(slug)); cached != nil {
		return cached, nil
	}

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Get product by slug", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.cacheProduct(ctx, productSlugKey(slug), product)
	return product, nil
}

func (s *Service) SearchProducts(ctx context.Context, query string, page uint64) ([]*domain.Product, error) {
	if query == "" {
		return []*domain.Product{}, nil
	}
	list, _, err := s.repo.ListProducts(ctx, domain.ProductFilter{
		Search: query,
		Page:   page,
		Limit:  16,
	})
	if err != nil {
		s.logger.Error("Search products", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	options, err := s.repo.ListFilterOptions(ctx)
	if err != nil {
		s.logger.Error("List filter options", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return options, nil
}

func (s *Service) AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 || review.Comment == "" {
		return nil, domain.ErrBadRequest
	}

	product, err := s.repo.GetProductByID(ctx, review.ProductID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrAlreadyReviewed
		}
		s.logger.Error("Create review", zap.Error(err))
		return nil, domain.ErrInternal
	}

	// The rating changed, drop stale copies.
	if err := s.cache.Del(ctx, productCacheKey(product.ID), productSlugKey(product.Slug)); err != nil {
		s.logger.Warn("Invalidate product cache", zap.Error(err))
	}

	return created, nil
}

func (s *Service) ListReviews(ctx context.Context, productID uint64) ([]*domain.Review, error) {
	list, err := s.repo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("List reviews", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) cachedProduct(ctx context.Context, key string) *domain.Product {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Product cache get", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}
	var product domain.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		s.logger.Warn("Product cache decode", zap.Error(err))
		return nil
	}
	return &product
}

func (s *Service) cacheProduct(ctx context.Context, key string, product *domain.Product) {
	raw, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), productCacheTTL); err != nil {
		s.logger.Warn("Product cache set", zap.Error(err))
	}
}
