package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type JwtCustomClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

type JwtCustomRefreshClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type AuthUsecase interface {
	Signup(ctx context.Context, request SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, request LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, request RefreshTokenRequest) (*AuthResponse, error)
}
