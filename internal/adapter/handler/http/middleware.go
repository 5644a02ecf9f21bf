package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const adminPayloadKey = "admin_payload"

func abortWithError(ctx *gin.Context, err error) {
	statusCode, _ := statusForError(err)
	_ = ctx.AbortWithError(statusCode, err)
}

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			abortWithError(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			abortWithError(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			abortWithError(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			abortWithError(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(adminPayloadKey, payload)

		ctx.Next()
	}
}
