package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Product struct {
	ID          uint64
	Name        string
	Brand       string
	Slug        string
	Images      []string
	Sizes       []string
	Colors      []string
	Description string
	Gender      string
	Category    string
	Subcategory string
	Occasion    string
	Price       decimal.Decimal
	OfferPrice  decimal.Decimal
	Rating      float64
	ReviewCount uint32
	Stock       uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitPrice is the price a buyer actually pays: the offer price when one is
// set, the list price otherwise.
func (p *Product) UnitPrice() decimal.Decimal {
	if p.OfferPrice.Cmp(decimal.Zero) > 0 {
		return p.OfferPrice
	}
	return p.Price
}

type Review struct {
	ID        uint64
	UserID    uint64
	ProductID uint64
	Rating    float64
	Comment   string
	UserName  string
	Avatar    string
	CreatedAt time.Time
}

// ProductFilter drives catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Gender      string
	Category    string
	Subcategory string
	Occasion    string
	Brand       string
	Sizes       []string
	Search      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Sort        string
	Page        uint64
	Limit       uint64
}

type FilterOptions struct {
	Categories    []string
	Subcategories []string
	Brands        []string
	Genders       []string
	Occasions     []string
	Sizes         []string
}
