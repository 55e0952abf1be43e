package service

import (
	"fmt"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/govalues/decimal"
)

var half = decimal.MustParse("0.5")

// OrderTotal computes the authoritative order amount: the sum of catalog unit
// prices times quantities, rounded half-up to the minor unit. Unit prices must
// already come from trusted catalog records.
func OrderTotal(items []domain.OrderItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Decimal{}, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return decimal.Decimal{}, domain.ErrBadQuantity
		}
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
		line, err := item.UnitPrice.Mul(qty)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
	}

	return roundHalfUpToMinorUnit(total)
}

// MinorUnits converts an amount to the currency's minor unit (paise for INR).
// The gateway speaks minor units exclusively.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	paise, err := halfUpPaise(amount)
	if err != nil {
		return 0, err
	}
	units, _, ok := paise.Int64(0)
	if !ok {
		return 0, fmt.Errorf("amount %s does not fit minor units", amount)
	}
	return units, nil
}

// halfUpPaise scales an amount to paise and rounds half-up to an integer.
// Amounts are never negative here, so half-up is a plain frac >= 0.5 test.
func halfUpPaise(amount decimal.Decimal) (decimal.Decimal, error) {
	paise, err := amount.Mul(decimal.Hundred)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	whole := paise.Trunc(0)
	frac, err := paise.Sub(whole)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	if frac.Cmp(half) >= 0 {
		whole, err = whole.Add(decimal.One)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
	}
	return whole, nil
}

func roundHalfUpToMinorUnit(amount decimal.Decimal) (decimal.Decimal, error) {
	paise, err := halfUpPaise(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rounded, err := paise.Quo(decimal.Hundred)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return rounded, nil
}
