package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port/mock"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogTestService(t *testing.T, mockCtrl *gomock.Controller,
	prepare func(repo *mock.MockRepository, cache *mock.MockCatalogCache)) *service.Service {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	cache := mock.NewMockCatalogCache(mockCtrl)
	if prepare != nil {
		prepare(repo, cache)
	}

	s, err := service.NewService(repo,
		mock.NewMockTokenService(mockCtrl),
		mock.NewMockGoogleVerifier(mockCtrl),
		mock.NewMockPaymentGateway(mockCtrl),
		cache,
		zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestService_GetProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{
		ID:    10,
		Name:  "Runner Sneaker",
		Slug:  "runner-sneaker",
		Price: decimal.MustParse("500"),
	}

	t.Run("miss reads the database and fills the cache", func(t *testing.T) {
		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			cache.EXPECT().Get(gomock.Any(), "product:id:10").Return("", nil)
			repo.EXPECT().GetProductByID(gomock.Any(), uint64(10)).Return(product, nil)
			cache.EXPECT().Set(gomock.Any(), "product:id:10", gomock.Any(), gomock.Any()).Return(nil)
		})

		got, err := s.GetProduct(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("hit never touches the database", func(t *testing.T) {
		raw, err := json.Marshal(product)
		require.NoError(t, err)

		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			cache.EXPECT().Get(gomock.Any(), "product:id:10").Return(string(raw), nil)
		})

		got, err := s.GetProduct(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
		assert.Zero(t, got.Price.Cmp(product.Price))
	})

	t.Run("broken cache falls back to the database", func(t *testing.T) {
		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			cache.EXPECT().Get(gomock.Any(), "product:id:10").Return("{not json", nil)
			repo.EXPECT().GetProductByID(gomock.Any(), uint64(10)).Return(product, nil)
			cache.EXPECT().Set(gomock.Any(), "product:id:10", gomock.Any(), gomock.Any()).Return(nil)
		})

		got, err := s.GetProduct(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("unknown product", func(t *testing.T) {
		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			cache.EXPECT().Get(gomock.Any(), "product:id:99").Return("", nil)
			repo.EXPECT().GetProductByID(gomock.Any(), uint64(99)).
				Return(nil, domain.ErrDataNotFound)
		})

		_, err := s.GetProduct(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestService_ListProductsDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
		repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter domain.ProductFilter) ([]*domain.Product, uint64, error) {
				assert.Equal(t, uint64(1), filter.Page)
				assert.Equal(t, uint64(20), filter.Limit)
				return []*domain.Product{}, 0, nil
			})
	})

	_, _, err := s.ListProducts(context.Background(), domain.ProductFilter{Page: 0, Limit: 5000})
	assert.NoError(t, err)
}

func TestService_AddReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{ID: 10, Slug: "runner-sneaker"}

	t.Run("creates and invalidates both cache keys", func(t *testing.T) {
		review := &domain.Review{UserID: 1, ProductID: 10, Rating: 4, Comment: "solid"}

		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			repo.EXPECT().GetProductByID(gomock.Any(), uint64(10)).Return(product, nil)
			repo.EXPECT().CreateReview(gomock.Any(), review).Return(review, nil)
			cache.EXPECT().Del(gomock.Any(), "product:id:10", "product:slug:runner-sneaker").
				Return(nil)
		})

		created, err := s.AddReview(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, review, created)
	})

	t.Run("second review conflicts", func(t *testing.T) {
		review := &domain.Review{UserID: 1, ProductID: 10, Rating: 4, Comment: "again"}

		s := newCatalogTestService(t, mockCtrl, func(repo *mock.MockRepository, cache *mock.MockCatalogCache) {
			repo.EXPECT().GetProductByID(gomock.Any(), uint64(10)).Return(product, nil)
			repo.EXPECT().CreateReview(gomock.Any(), review).Return(nil, domain.ErrConflictingData)
		})

		_, err := s.AddReview(context.Background(), review)
		assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	})

	t.Run("rating out of range", func(t *testing.T) {
		s := newCatalogTestService(t, mockCtrl, nil)

		_, err := s.AddReview(context.Background(),
			&domain.Review{UserID: 1, ProductID: 10, Rating: 6, Comment: "x"})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}
