package port

import (
	"context"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
)

// NewOrderItem is the client's view of an order line: a product reference and
// a variant choice. It deliberately carries no price.
type NewOrderItem struct {
	ProductID uint64
	Size      string
	Color     string
	Quantity  uint32
}

type VerifyPaymentInput struct {
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

type Service interface {
	// Auth
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, identifier, password string) (string, *domain.User, error)
	GoogleLogin(ctx context.Context, idToken string) (string, *domain.User, error)
	GetUser(ctx context.Context, id uint64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint64, name, phone, avatar string) (*domain.User, error)

	// Catalog
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, uint64, error)
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string, page uint64) ([]*domain.Product, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, productID uint64) ([]*domain.Review, error)

	// Cart
	GetCart(ctx context.Context, userID uint64) ([]*domain.CartItem, error)
	AddToCart(ctx context.Context, item *domain.CartItem) ([]*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID uint64, quantity uint32) ([]*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uint64) ([]*domain.CartItem, error)
	ClearCart(ctx context.Context, userID uint64) error

	// Wishlist
	GetWishlist(ctx context.Context, userID uint64) ([]*domain.Product, error)
	AddToWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, error)
	RemoveFromWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, error)
	ToggleWishlist(ctx context.Context, userID, productID uint64) ([]*domain.Product, bool, error)

	// Orders
	PlaceOrder(ctx context.Context, userID uint64, items []NewOrderItem, address domain.Address) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uint64) ([]*domain.Order, error)
	GetOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error)

	// Payment
	CreateGatewayOrder(ctx context.Context, userID uint64, orderID string) (*GatewayOrder, error)
	VerifyPayment(ctx context.Context, userID uint64, input VerifyPaymentInput) (*domain.Order, error)
	GetGatewayPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)

	// Admin
	AdminListOrders(ctx context.Context, filter domain.AdminOrderFilter) ([]*domain.Order, uint64, error)
	AdminGetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AdminUpdateOrderStatus(ctx context.Context, orderID string, orderStatus domain.OrderStatus, paymentStatus domain.PaymentStatus) (*domain.Order, error)
	AdminCancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
	OrderStats(ctx context.Context) (*domain.OrderStats, error)
}
