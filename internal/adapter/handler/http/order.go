package http

import (
	"net/http"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*Handler
	service port.Service
}

func NewOrderHandler(h *Handler, service port.Service) (*OrderHandler, error) {
	return &OrderHandler{Handler: h, service: service}, nil
}

type orderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  uint32 `json:"quantity" binding:"required"`
}

type addressRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type placeOrderRequest struct {
	Items   []orderItemRequest `json:"items" binding:"required"`
	Address addressRequest     `json:"address" binding:"required"`
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := placeOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.NewOrderItem{
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.PlaceOrder(ctx, payload.UserID, items, domain.Address{
		FirstName:  req.Address.FirstName,
		LastName:   req.Address.LastName,
		Email:      req.Address.Email,
		Phone:      req.Address.Phone,
		Street:     req.Address.Street,
		City:       req.Address.City,
		State:      req.Address.State,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	orders, err := oh.service.ListOrders(ctx, payload.UserID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(orders))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	order, err := oh.service.GetOrder(ctx, payload.UserID, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	order, err := oh.service.CancelOrder(ctx, payload.UserID, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
