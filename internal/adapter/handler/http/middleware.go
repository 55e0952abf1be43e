package http

import (
	"strings"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const authCookieKey = "token"
const adminSecretHeaderKey = "X-Admin-Secret"
const userPayloadKey = "user_payload"

// authCheck accepts the token from the Authorization header or, for browser
// clients, from the auth cookie.
func authCheck(h *Handler, tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ""

		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) != 0 {
			words := strings.Split(header, " ")
			if len(words) != 2 {
				h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
				return
			}
			if words[0] != authType {
				h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
				return
			}
			token = words[1]
		} else if cookie, err := ctx.Cookie(authCookieKey); err == nil {
			token = cookie
		}

		if token == "" {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func adminCheck(h *Handler, secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		provided := ctx.Request.Header.Get(adminSecretHeaderKey)
		if provided == "" || provided != secret {
			h.handleAbort(ctx, domain.ErrInvalidAdminSecret)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}
