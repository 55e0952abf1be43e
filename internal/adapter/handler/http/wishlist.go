package http

import (
	"strconv"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	*Handler
	service port.Service
}

func NewWishlistHandler(h *Handler, service port.Service) (*WishlistHandler, error) {
	return &WishlistHandler{Handler: h, service: service}, nil
}

func (wh *WishlistHandler) GetWishlist(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	products, err := wh.service.GetWishlist(ctx, payload.UserID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newProductListResponse(products))
}

type wishlistRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
}

func (wh *WishlistHandler) AddToWishlist(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := wishlistRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	products, err := wh.service.AddToWishlist(ctx, payload.UserID, req.ProductID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newProductListResponse(products))
}

func (wh *WishlistHandler) RemoveFromWishlist(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	productID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	products, err := wh.service.RemoveFromWishlist(ctx, payload.UserID, productID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newProductListResponse(products))
}

type toggleWishlistResponse struct {
	Products []productResponse `json:"products"`
	Added    bool              `json:"added"`
}

func (wh *WishlistHandler) ToggleWishlist(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := wishlistRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	products, added, err := wh.service.ToggleWishlist(ctx, payload.UserID, req.ProductID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, toggleWishlistResponse{
		Products: newProductListResponse(products),
		Added:    added,
	})
}
