package http

import (
	"strconv"
	"strings"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
)

type ProductHandler struct {
	*Handler
	service port.Service
}

func NewProductHandler(h *Handler, service port.Service) (*ProductHandler, error) {
	return &ProductHandler{Handler: h, service: service}, nil
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return nil
	}
	return &d
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	filter := domain.ProductFilter{
		Gender:      ctx.Query("gender"),
		Category:    ctx.Query("category"),
		Subcategory: ctx.Query("subcategory"),
		Occasion:    ctx.Query("occasion"),
		Brand:       ctx.Query("brand"),
		Search:      ctx.Query("search"),
		MinPrice:    parseDecimal(ctx.Query("minPrice")),
		MaxPrice:    parseDecimal(ctx.Query("maxPrice")),
		Sort:        ctx.Query("sort"),
		Page:        parseUint(ctx.Query("page")),
		Limit:       parseUint(ctx.Query("limit")),
	}
	if sizes := ctx.Query("sizes"); sizes != "" {
		filter.Sizes = strings.Split(sizes, ",")
	}

	products, total, err := ph.service.ListProducts(ctx, filter)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}

	ph.handleSuccess(ctx, productPageResponse{
		Products: newProductListResponse(products),
		Total:    total,
		Page:     page,
	})
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.GetProduct(ctx, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) GetProductBySlug(ctx *gin.Context) {
	product, err := ph.service.GetProductBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) SearchProducts(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ph.handleSuccess(ctx, newProductListResponse(nil))
		return
	}

	products, err := ph.service.SearchProducts(ctx, query, parseUint(ctx.Query("page")))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductListResponse(products))
}

func (ph *ProductHandler) FilterOptions(ctx *gin.Context) {
	options, err := ph.service.FilterOptions(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, options)
}

type reviewRequest struct {
	Rating  float64 `json:"rating" binding:"required"`
	Comment string  `json:"comment"`
}

func (ph *ProductHandler) AddReview(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	productID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := reviewRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	review, err := ph.service.AddReview(ctx, &domain.Review{
		UserID:    payload.UserID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, review)
}

func (ph *ProductHandler) ListReviews(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	reviews, err := ph.service.ListReviews(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newReviewListResponse(reviews))
}
