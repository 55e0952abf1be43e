package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem snapshots a product at order time. UnitPrice comes from the
// catalog record, never from the request.
type OrderItem struct {
	ProductID   uint64
	ProductName string
	Size        string
	Color       string
	Quantity    uint32
	UnitPrice   decimal.Decimal
}

type Address struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

type Order struct {
	ID          string
	UserID      uint64
	Items       []OrderItem
	Address     Address
	TotalAmount decimal.Decimal
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus

	// Gateway correlation, set once per settled payment.
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// paymentTransitions lists the forward-only payment moves. Paid is terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
}

// orderTransitions lists fulfilment moves. Cancellation is possible only
// from processing; the payment guard lives in Cancellable.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Cancellable reports whether the order may still be cancelled. A paid order
// needs a refund flow instead.
func (o *Order) Cancellable() bool {
	return o.OrderStatus == OrderStatusProcessing && o.PaymentStatus != PaymentStatusPaid
}

type OrderStats struct {
	ByStatus    map[OrderStatus]uint64
	TotalOrders uint64
	Revenue     decimal.Decimal
}

// AdminOrderFilter drives the admin order search.
type AdminOrderFilter struct {
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	Query         string
	Page          uint64
	Limit         uint64
}
