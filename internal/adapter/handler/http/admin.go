package http

import (
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*Handler
	service port.Service
}

func NewAdminHandler(h *Handler, service port.Service) (*AdminHandler, error) {
	return &AdminHandler{Handler: h, service: service}, nil
}

type adminOrderPageResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  uint64          `json:"total"`
	Page   uint64          `json:"page"`
}

func (ah *AdminHandler) ListOrders(ctx *gin.Context) {
	filter := domain.AdminOrderFilter{
		OrderStatus:   domain.OrderStatus(ctx.Query("status")),
		PaymentStatus: domain.PaymentStatus(ctx.Query("paymentStatus")),
		Query:         ctx.Query("q"),
		Page:          parseUint(ctx.Query("page")),
		Limit:         parseUint(ctx.Query("limit")),
	}

	orders, total, err := ah.service.AdminListOrders(ctx, filter)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}

	ah.handleSuccess(ctx, adminOrderPageResponse{
		Orders: newOrderListResponse(orders),
		Total:  total,
		Page:   page,
	})
}

func (ah *AdminHandler) GetOrder(ctx *gin.Context) {
	order, err := ah.service.AdminGetOrder(ctx, ctx.Param("id"))
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newOrderResponse(order))
}

type updateOrderStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

func (ah *AdminHandler) UpdateOrderStatus(ctx *gin.Context) {
	req := updateOrderStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	order, err := ah.service.AdminUpdateOrderStatus(ctx, ctx.Param("id"),
		domain.OrderStatus(req.OrderStatus), domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newOrderResponse(order))
}

func (ah *AdminHandler) CancelOrder(ctx *gin.Context) {
	order, err := ah.service.AdminCancelOrder(ctx, ctx.Param("id"))
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newOrderResponse(order))
}

type orderStatsResponse struct {
	ByStatus    map[string]uint64 `json:"byStatus"`
	TotalOrders uint64            `json:"totalOrders"`
	Revenue     string            `json:"revenue"`
}

func (ah *AdminHandler) OrderStats(ctx *gin.Context) {
	stats, err := ah.service.OrderStats(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	byStatus := make(map[string]uint64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	ah.handleSuccess(ctx, orderStatsResponse{
		ByStatus:    byStatus,
		TotalOrders: stats.TotalOrders,
		Revenue:     stats.Revenue.String(),
	})
}
