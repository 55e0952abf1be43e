package auth_test

import (
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/auth"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoRoundTrip(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)
}

func TestPasetoRejectsGarbage(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	_, err = ts.VerifyToken("v4.local.garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasetoRejectsForeignKey(t *testing.T) {
	issuer, err := auth.New()
	require.NoError(t, err)
	verifier, err := auth.New()
	require.NoError(t, err)

	token, err := issuer.CreateToken(&domain.User{ID: 7})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
