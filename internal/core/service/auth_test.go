package service_test

import (
	"context"
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port/mock"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/service"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authMocks struct {
	repo   *mock.MockRepository
	tokens *mock.MockTokenService
	google *mock.MockGoogleVerifier
}

func newAuthTestService(t *testing.T, mockCtrl *gomock.Controller, prepare func(m authMocks)) *service.Service {
	t.Helper()

	m := authMocks{
		repo:   mock.NewMockRepository(mockCtrl),
		tokens: mock.NewMockTokenService(mockCtrl),
		google: mock.NewMockGoogleVerifier(mockCtrl),
	}
	if prepare != nil {
		prepare(m)
	}

	s, err := service.NewService(m.repo, m.tokens, m.google,
		mock.NewMockPaymentGateway(mockCtrl),
		mock.NewMockCatalogCache(mockCtrl),
		zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("hashes the password and defaults to local auth", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").
				Return(nil, domain.ErrDataNotFound)
			m.repo.EXPECT().GetUserByPhone(gomock.Any(), "9876543210").
				Return(nil, domain.ErrDataNotFound)
			m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.AuthTypeLocal, user.AuthType)
					assert.NotEqual(t, "secret123", user.Password)
					assert.NoError(t, utils.ComparePassword("secret123", user.Password))
					user.ID = 1
					return user, nil
				})
		})

		user, err := s.RegisterUser(context.Background(), &domain.User{
			Name:     "Asha",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").
				Return(&domain.User{ID: 1}, nil)
		})

		_, err := s.RegisterUser(context.Background(), &domain.User{
			Email:    "asha@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	localUser := &domain.User{
		ID:       1,
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: hashed,
		AuthType: domain.AuthTypeLocal,
	}

	t.Run("email identifier", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(localUser, nil)
			m.tokens.EXPECT().CreateToken(localUser).Return("tok", nil)
		})

		token, user, err := s.LoginUser(context.Background(), "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, localUser, user)
	})

	t.Run("phone identifier", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByPhone(gomock.Any(), "9876543210").Return(localUser, nil)
			m.tokens.EXPECT().CreateToken(localUser).Return("tok", nil)
		})

		_, _, err := s.LoginUser(context.Background(), "9876543210", "secret123")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(localUser, nil)
		})

		_, _, err := s.LoginUser(context.Background(), "asha@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
				Return(nil, domain.ErrDataNotFound)
		})

		_, _, err := s.LoginUser(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("google account cannot password login", func(t *testing.T) {
		googleUser := &domain.User{ID: 2, Email: "g@example.com", AuthType: domain.AuthTypeGoogle}

		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), "g@example.com").Return(googleUser, nil)
		})

		_, _, err := s.LoginUser(context.Background(), "g@example.com", "anything")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestService_GoogleLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	claims := &port.GoogleClaims{
		Email:  "asha@example.com",
		Name:   "Asha",
		Avatar: "https://lh3.example/avatar",
	}

	t.Run("first login creates the account", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.google.EXPECT().Verify(gomock.Any(), "id-token").Return(claims, nil)
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), claims.Email).
				Return(nil, domain.ErrDataNotFound)
			m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.AuthTypeGoogle, user.AuthType)
					assert.Empty(t, user.Password)
					user.ID = 3
					return user, nil
				})
			m.tokens.EXPECT().CreateToken(gomock.Any()).Return("tok", nil)
		})

		token, user, err := s.GoogleLogin(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, uint64(3), user.ID)
	})

	t.Run("returning user signs straight in", func(t *testing.T) {
		existing := &domain.User{ID: 3, Email: claims.Email, AuthType: domain.AuthTypeGoogle}

		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.google.EXPECT().Verify(gomock.Any(), "id-token").Return(claims, nil)
			m.repo.EXPECT().GetUserByEmail(gomock.Any(), claims.Email).Return(existing, nil)
			m.tokens.EXPECT().CreateToken(existing).Return("tok", nil)
		})

		_, user, err := s.GoogleLogin(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, existing, user)
	})

	t.Run("invalid id token", func(t *testing.T) {
		s := newAuthTestService(t, mockCtrl, func(m authMocks) {
			m.google.EXPECT().Verify(gomock.Any(), "bad").
				Return(nil, domain.ErrGoogleTokenInvalid)
		})

		_, _, err := s.GoogleLogin(context.Background(), "bad")
		assert.ErrorIs(t, err, domain.ErrGoogleTokenInvalid)
	})
}
