package http

import (
	"net/http"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*Handler
	service port.Service
}

func NewUserHandler(h *Handler, service port.Service) (*UserHandler, error) {
	return &UserHandler{Handler: h, service: service}, nil
}

const authCookieMaxAge = 7 * 24 * 60 * 60

// setAuthCookie mirrors the token into a cookie for browser clients. API
// clients keep using the Authorization header.
func setAuthCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(authCookieKey, token, authCookieMaxAge, "/", "", false, true)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}

	if _, err := uh.service.RegisterUser(ctx, user); err != nil {
		uh.handleError(ctx, err)
		return
	}

	token, user, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	setAuthCookie(ctx, token)
	uh.handleSuccess(ctx, authResponse{Token: token, User: newUserResponse(user)})
}

type loginRequest struct {
	// Identifier is an email or a phone number.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, user, err := uh.service.LoginUser(ctx, req.Identifier, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	setAuthCookie(ctx, token)
	uh.handleSuccess(ctx, authResponse{Token: token, User: newUserResponse(user)})
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

func (uh *UserHandler) GoogleLogin(ctx *gin.Context) {
	req := googleLoginRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, user, err := uh.service.GoogleLogin(ctx, req.IDToken)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	setAuthCookie(ctx, token)
	uh.handleSuccess(ctx, authResponse{Token: token, User: newUserResponse(user)})
}

// Logout drops the auth cookie. Header tokens simply expire.
func (uh *UserHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie(authCookieKey, "", -1, "/", "", false, true)
	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (uh *UserHandler) GetProfile(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	user, err := uh.service.GetUser(ctx, payload.UserID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

func (uh *UserHandler) UpdateProfile(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := updateProfileRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user, err := uh.service.UpdateProfile(ctx, payload.UserID, req.Name, req.Phone, req.Avatar)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}
