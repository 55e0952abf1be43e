package port

import (
	"context"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
)

type TokenPayload struct {
	UserID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}

// GoogleClaims is the verified identity triple a Google id token yields.
type GoogleClaims struct {
	Email  string
	Name   string
	Avatar string
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleClaims, error)
}
