package http

import (
	"time"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
)

type userResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	AuthType string `json:"authType"`
	Avatar   string `json:"avatar,omitempty"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		AuthType: string(user.AuthType),
		Avatar:   user.Avatar,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type productResponse struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Slug        string   `json:"slug"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Gender      string   `json:"gender"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Occasion    string   `json:"occasion"`
	Price       string   `json:"price"`
	OfferPrice  string   `json:"offerPrice"`
	Rating      float64  `json:"rating"`
	ReviewCount uint32   `json:"reviewCount"`
	Stock       uint32   `json:"stock"`
}

func newProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Slug:        product.Slug,
		Images:      product.Images,
		Sizes:       product.Sizes,
		Colors:      product.Colors,
		Description: product.Description,
		Gender:      product.Gender,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Occasion:    product.Occasion,
		Price:       product.Price.String(),
		OfferPrice:  product.OfferPrice.String(),
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
		Stock:       product.Stock,
	}
}

func newProductListResponse(products []*domain.Product) []productResponse {
	list := make([]productResponse, 0, len(products))
	for _, p := range products {
		list = append(list, newProductResponse(p))
	}
	return list
}

type productPageResponse struct {
	Products []productResponse `json:"products"`
	Total    uint64            `json:"total"`
	Page     uint64            `json:"page"`
}

type reviewResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	UserName  string    `json:"userName"`
	Avatar    string    `json:"avatar,omitempty"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func newReviewListResponse(reviews []*domain.Review) []reviewResponse {
	list := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		list = append(list, reviewResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Avatar:    r.Avatar,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return list
}

type cartItemResponse struct {
	ID       uint64           `json:"id"`
	Size     string           `json:"size"`
	Color    string           `json:"color"`
	Quantity uint32           `json:"quantity"`
	Product  *productResponse `json:"product,omitempty"`
}

func newCartResponse(items []*domain.CartItem) []cartItemResponse {
	list := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		resp := cartItemResponse{
			ID:       item.ID,
			Size:     item.Size,
			Color:    item.Color,
			Quantity: item.Quantity,
		}
		if item.Product != nil {
			product := newProductResponse(item.Product)
			resp.Product = &product
		}
		list = append(list, resp)
	}
	return list
}

type addressResponse struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type orderItemResponse struct {
	ProductID   uint64 `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Quantity    uint32 `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type orderResponse struct {
	ID               string              `json:"id"`
	Items            []orderItemResponse `json:"items"`
	Address          addressResponse     `json:"address"`
	TotalAmount      string              `json:"totalAmount"`
	PaymentStatus    string              `json:"paymentStatus"`
	OrderStatus      string              `json:"orderStatus"`
	GatewayOrderID   string              `json:"razorpayOrderId,omitempty"`
	GatewayPaymentID string              `json:"razorpayPaymentId,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
		})
	}
	return orderResponse{
		ID:    order.ID,
		Items: items,
		Address: addressResponse{
			FirstName:  order.Address.FirstName,
			LastName:   order.Address.LastName,
			Email:      order.Address.Email,
			Phone:      order.Address.Phone,
			Street:     order.Address.Street,
			City:       order.Address.City,
			State:      order.Address.State,
			PostalCode: order.Address.PostalCode,
			Country:    order.Address.Country,
		},
		TotalAmount:      order.TotalAmount.String(),
		PaymentStatus:    string(order.PaymentStatus),
		OrderStatus:      string(order.OrderStatus),
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: order.GatewayPaymentID,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func newOrderListResponse(orders []*domain.Order) []orderResponse {
	list := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		list = append(list, newOrderResponse(order))
	}
	return list
}
