package domain

import "time"

type AuthType string

const (
	AuthTypeLocal  AuthType = "local"
	AuthTypeGoogle AuthType = "google"
)

type User struct {
	ID        uint64
	Name      string
	Email     string
	Phone     string
	Password  string
	AuthType  AuthType
	GoogleID  string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a cart line owned by a user. Price is never stored here,
// it is always read from the product at order time.
type CartItem struct {
	ID        uint64
	UserID    uint64
	ProductID uint64
	Size      string
	Color     string
	Quantity  uint32
	Product   *Product
}
