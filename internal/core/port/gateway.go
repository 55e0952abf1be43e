package port

import "context"

// GatewayPaymentCaptured is the gateway status meaning funds were actually
// collected, not just authorized.
const GatewayPaymentCaptured = "captured"

// GatewayOrder is the gateway-side record authorizing a charge. Amount is in
// minor units (paise).
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// GatewayPayment is the gateway's authoritative payment record, fetched
// server-to-server. Amount is in minor units.
type GatewayPayment struct {
	ID       string
	OrderID  string
	Amount   int64
	Currency string
	Status   string
	Method   string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	// VerifySignature recomputes the callback signature from the gateway
	// order and payment ids and compares it against the supplied one.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}
