package http

import (
	"strconv"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*Handler
	service port.Service
}

func NewCartHandler(h *Handler, service port.Service) (*CartHandler, error) {
	return &CartHandler{Handler: h, service: service}, nil
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	items, err := ch.service.GetCart(ctx, payload.UserID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(items))
}

type addToCartRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  uint32 `json:"quantity" binding:"required"`
}

func (ch *CartHandler) AddToCart(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := addToCartRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	items, err := ch.service.AddToCart(ctx, &domain.CartItem{
		UserID:    payload.UserID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(items))
}

type updateCartItemRequest struct {
	Quantity uint32 `json:"quantity" binding:"required"`
}

func (ch *CartHandler) UpdateCartItem(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := updateCartItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	items, err := ch.service.UpdateCartItem(ctx, payload.UserID, itemID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(items))
}

func (ch *CartHandler) RemoveCartItem(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	items, err := ch.service.RemoveCartItem(ctx, payload.UserID, itemID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(items))
}

func (ch *CartHandler) ClearCart(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	if err := ch.service.ClearCart(ctx, payload.UserID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(nil))
}
