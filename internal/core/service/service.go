package service

import (
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"go.uber.org/zap"
)

// Currency is the only currency the shop charges in.
const Currency = "INR"

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	google       port.GoogleVerifier
	gateway      port.PaymentGateway
	cache        port.CatalogCache
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	google port.GoogleVerifier, gateway port.PaymentGateway,
	cache port.CatalogCache, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		google:       google,
		gateway:      gateway,
		cache:        cache,
		logger:       logger,
	}, nil
}
