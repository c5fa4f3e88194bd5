package controller

import (
	"errors"
	"net/http"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthUsecase domain.AuthUsecase
}

func NewAuthController(usecase domain.AuthUsecase) *AuthController {
	return &AuthController{
		AuthUsecase: usecase,
	}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var request domain.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	response, err := c.AuthUsecase.Signup(ctx.Request.Context(), request)
	if errors.Is(err, domain.ErrEmailTaken) {
		ErrorResponse(ctx, http.StatusConflict, "EMAIL_TAKEN", err.Error())
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var request domain.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	response, err := c.AuthUsecase.Login(ctx.Request.Context(), request)
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request domain.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	response, err := c.AuthUsecase.RefreshToken(ctx.Request.Context(), request)
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_TOKEN", "invalid refresh token")
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, response)
}
