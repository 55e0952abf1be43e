package http

import (
	"net/http"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:      http.StatusBadRequest,
	domain.ErrEmptyOrder:      http.StatusBadRequest,
	domain.ErrBadQuantity:     http.StatusBadRequest,
	domain.ErrAddressRequired: http.StatusBadRequest,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrInvalidAdminSecret:         http.StatusUnauthorized,
	domain.ErrGoogleTokenInvalid:         http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrAlreadyInWishlist:      http.StatusConflict,
	domain.ErrAlreadyReviewed:        http.StatusConflict,
	domain.ErrOrderNotCancellable:    http.StatusConflict,
	domain.ErrInvalidTransition:      http.StatusConflict,
	domain.ErrPaymentAlreadyVerified: http.StatusConflict,
	domain.ErrNoUpdatedData:          http.StatusConflict,

	// Failed verification keeps the order pending. The client gets a 400
	// and may retry with a correct payload.
	domain.ErrNoGatewayOrder:     http.StatusBadRequest,
	domain.ErrSignatureMismatch:  http.StatusBadRequest,
	domain.ErrAmountMismatch:     http.StatusBadRequest,
	domain.ErrPaymentNotCaptured: http.StatusBadRequest,
	domain.ErrGatewayUnavailable: http.StatusBadGateway,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleValidationError sends an error response for a request binding error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// handleAbort sends an error response and aborts the request
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
