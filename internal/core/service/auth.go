package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/utils"
	"go.uber.org/zap"
)

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Phone != "" {
		exUser, err = s.repo.GetUserByPhone(ctx, user.Phone)
		if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Get user by phone", zap.Error(err))
			return nil, domain.ErrInternal
		}
		if exUser != nil {
			return nil, domain.ErrConflictingData
		}
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	user.Password = hashed
	user.AuthType = domain.AuthTypeLocal

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

// LoginUser accepts an email or a phone number as identifier.
func (s *Service) LoginUser(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	var user *domain.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.repo.GetUserByEmail(ctx, identifier)
	} else {
		user, err = s.repo.GetUserByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, domain.ErrInternal
	}

	if user.AuthType != domain.AuthTypeLocal || user.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := utils.ComparePassword(password, user.Password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", nil, domain.ErrTokenCreation
	}

	return token, user, nil
}

// GoogleLogin verifies the id token and signs the user in, creating the
// account on first login.
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (string, *domain.User, error) {
	claims, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return "", nil, domain.ErrGoogleTokenInvalid
	}

	user, err := s.repo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Get user", zap.Error(err))
			return "", nil, domain.ErrInternal
		}
		user, err = s.repo.CreateUser(ctx, &domain.User{
			Name:     claims.Name,
			Email:    claims.Email,
			Avatar:   claims.Avatar,
			AuthType: domain.AuthTypeGoogle,
		})
		if err != nil {
			s.logger.Error("Create google user", zap.Error(err))
			return "", nil, domain.ErrInternal
		}
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", nil, domain.ErrTokenCreation
	}

	return token, user, nil
}

func (s *Service) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint64, name, phone, avatar string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Update user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
