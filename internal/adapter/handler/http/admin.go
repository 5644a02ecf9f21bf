package http

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/adapter/config"
	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

type AdminHandler struct {
	Handler
	conf         *config.Auth
	tokenService port.TokenService
}

func NewAdminHandler(conf *config.Auth, tokenService port.TokenService, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler:      *NewHandler(logger),
		conf:         conf,
		tokenService: tokenService,
	}, nil
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (ah *AdminHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	loginOK := subtle.ConstantTimeCompare([]byte(req.Login), []byte(ah.conf.AdminLogin)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ah.conf.AdminPassword)) == 1
	if !loginOK || !passOK {
		ah.handleError(ctx, domain.ErrInvalidCredentials)
		return
	}

	token, err := ah.tokenService.CreateToken(req.Login)
	if err != nil {
		ah.logger.Error("Create token", zap.Error(err))
		ah.handleError(ctx, domain.ErrTokenCreation)
		return
	}

	ah.handleSuccess(ctx, loginResponse{Token: token})
}
