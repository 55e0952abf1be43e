package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrInvalidAdminSecret         = errors.New("admin secret missing or invalid")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")
	ErrGoogleTokenInvalid         = errors.New("google id token is invalid")

	// * Business errors.
	ErrEmptyOrder             = errors.New("order has no items")
	ErrBadQuantity            = errors.New("item quantity must be at least 1")
	ErrAddressRequired        = errors.New("shipping address is required")
	ErrAlreadyInWishlist      = errors.New("product already in wishlist")
	ErrAlreadyReviewed        = errors.New("product already reviewed by user")
	ErrOrderNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidTransition      = errors.New("status transition is not allowed")
	ErrPaymentAlreadyVerified = errors.New("payment already verified for order")
	ErrNoGatewayOrder         = errors.New("no gateway order created for order")

	// * Payment integrity errors. The order stays pending on any of these.
	ErrSignatureMismatch  = errors.New("payment signature does not match")
	ErrAmountMismatch     = errors.New("captured amount does not match order total")
	ErrPaymentNotCaptured = errors.New("payment is not captured by gateway")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
)
