package service_test

import (
	"testing"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(price string, qty uint32) domain.OrderItem {
	return domain.OrderItem{
		UnitPrice: decimal.MustParse(price),
		Quantity:  qty,
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.OrderItem
		expTotal string
		expError error
	}{
		{
			name:     "two lines",
			items:    []domain.OrderItem{item("500", 2), item("300", 1)},
			expTotal: "1300",
		},
		{
			name:     "single item",
			items:    []domain.OrderItem{item("499.99", 1)},
			expTotal: "499.99",
		},
		{
			name:     "rounds half up",
			items:    []domain.OrderItem{item("0.335", 1)},
			expTotal: "0.34",
		},
		{
			name:     "rounds down below half",
			items:    []domain.OrderItem{item("0.334", 1)},
			expTotal: "0.33",
		},
		{
			name:     "sub-paise prices accumulate before rounding",
			items:    []domain.OrderItem{item("0.333", 3)},
			expTotal: "1",
		},
		{
			name:     "empty order",
			items:    []domain.OrderItem{},
			expError: domain.ErrEmptyOrder,
		},
		{
			name:     "zero quantity",
			items:    []domain.OrderItem{item("500", 0)},
			expError: domain.ErrBadQuantity,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total, err := service.OrderTotal(test.items)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, total.Cmp(decimal.MustParse(test.expTotal)),
				"got %s, want %s", total, test.expTotal)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		exp    int64
	}{
		{"1300", 130000},
		{"499.99", 49999},
		{"0.01", 1},
		{"0", 0},
		{"12.345", 1235},
		{"12.344", 1234},
	}

	for _, test := range tests {
		t.Run(test.amount, func(t *testing.T) {
			units, err := service.MinorUnits(decimal.MustParse(test.amount))
			require.NoError(t, err)
			assert.Equal(t, test.exp, units)
		})
	}
}
