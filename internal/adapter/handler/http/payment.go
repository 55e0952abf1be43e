package http

import (
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*Handler
	service port.Service
}

func NewPaymentHandler(h *Handler, service port.Service) (*PaymentHandler, error) {
	return &PaymentHandler{Handler: h, service: service}, nil
}

type gatewayOrderResponse struct {
	GatewayOrderID string `json:"razorpayOrderId"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

// CreateGatewayOrder opens (or returns the already opened) gateway order for
// checkout of a pending order.
func (ph *PaymentHandler) CreateGatewayOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	gatewayOrder, err := ph.service.CreateGatewayOrder(ctx, payload.UserID, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gatewayOrderResponse{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
	})
}

type verifyPaymentRequest struct {
	OrderID          string `json:"orderId" binding:"required"`
	GatewayOrderID   string `json:"razorpayOrderId" binding:"required"`
	GatewayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	GatewaySignature string `json:"razorpaySignature" binding:"required"`
}

func (ph *PaymentHandler) VerifyPayment(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := verifyPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	order, err := ph.service.VerifyPayment(ctx, payload.UserID, port.VerifyPaymentInput{
		OrderID:          req.OrderID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
	})

	paymentVerifications.WithLabelValues(verifyResult(err)).Inc()

	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResponse(order))
}

func verifyResult(err error) string {
	switch err {
	case nil:
		return verifyResultOK
	case domain.ErrSignatureMismatch:
		return verifyResultSignature
	case domain.ErrAmountMismatch:
		return verifyResultAmount
	case domain.ErrPaymentNotCaptured:
		return verifyResultNotCaptured
	case domain.ErrPaymentAlreadyVerified:
		return verifyResultConflict
	case domain.ErrGatewayUnavailable:
		return verifyResultGateway
	default:
		return verifyResultOther
	}
}

func (ph *PaymentHandler) GetGatewayPayment(ctx *gin.Context) {
	payment, err := ph.service.GetGatewayPayment(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, payment)
}
