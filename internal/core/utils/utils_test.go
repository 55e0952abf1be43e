package utils_test

import (
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"Runner Sneaker", "runner-sneaker"},
		{"  Classic  Denim Jacket ", "classic-denim-jacket"},
		{"50% Off! T-Shirt", "50-off-t-shirt"},
		{"---", ""},
		{"Überknit", "berknit"},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.out, utils.Slugify(test.in))
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, utils.ComparePassword("secret123", hash))
	assert.Error(t, utils.ComparePassword("wrong", hash))
}
