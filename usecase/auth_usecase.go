package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/internal/tokenutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig 签发令牌用的密钥与有效期（小时）。
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  int
	RefreshExpiry int
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenConfig
	timeout  time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenConfig, timeout time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		timeout:  timeout,
	}
}

func (uc *authUsecase) createTokens(user *domain.User) (*domain.AuthResponse, error) {
	accessToken, err := tokenutil.CreateAccessToken(user, uc.tokens.AccessSecret, uc.tokens.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, err := tokenutil.CreateRefreshToken(user, uc.tokens.RefreshSecret, uc.tokens.RefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return &domain.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *authUsecase) Signup(ctx context.Context, request domain.SignupRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	existing, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	encrypted, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}
	user := &domain.User{
		ID:       primitive.NewObjectID(),
		Name:     request.Name,
		Email:    request.Email,
		Password: string(encrypted),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.createTokens(user)
}

func (uc *authUsecase) Login(ctx context.Context, request domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.createTokens(user)
}

func (uc *authUsecase) RefreshToken(ctx context.Context, request domain.RefreshTokenRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := tokenutil.ExtractIDFromToken(request.RefreshToken, uc.tokens.RefreshSecret)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.createTokens(user)
}
