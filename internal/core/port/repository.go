package port

import (
	"context"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// Product
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, uint64, error)
	ListFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error)

	// Cart
	ListCartItems(ctx context.Context, userID uint64) ([]*domain.CartItem, error)
	UpsertCartItem(ctx context.Context, item *domain.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, userID, itemID uint64, quantity uint32) error
	DeleteCartItem(ctx context.Context, userID, itemID uint64) error
	ClearCart(ctx context.Context, userID uint64) error

	// Wishlist
	ListWishlist(ctx context.Context, userID uint64) ([]*domain.Product, error)
	InWishlist(ctx context.Context, userID, productID uint64) (bool, error)
	AddWishlistItem(ctx context.Context, userID, productID uint64) error
	RemoveWishlistItem(ctx context.Context, userID, productID uint64) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.AdminOrderFilter) ([]*domain.Order, uint64, error)
	OrderStats(ctx context.Context) (*domain.OrderStats, error)

	// Order state transitions. Each is a single conditional update guarded
	// on the current status; zero affected rows yields ErrNoUpdatedData.
	UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, from, to domain.PaymentStatus) error
	SetGatewayOrder(ctx context.Context, id, gatewayOrderID string) error
	MarkOrderPaid(ctx context.Context, id, gatewayPaymentID, gatewaySignature string) error
}
