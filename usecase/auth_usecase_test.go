package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var testTokens = TokenConfig{
	AccessSecret:  "access-secret",
	RefreshSecret: "refresh-secret",
	AccessExpiry:  2,
	RefreshExpiry: 168,
}

func TestSignup(t *testing.T) {
	request := domain.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"}

	t.Run("creates user and issues both tokens", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)

		userRepo.On("GetByEmail", mock.Anything, request.Email).Return(nil, nil)
		var created *domain.User
		userRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.User)
			}).Return(nil)

		resp, err := uc.Signup(context.Background(), request)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.NotEqual(t, request.Password, created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(request.Password)))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)

		userRepo.On("GetByEmail", mock.Anything, request.Email).
			Return(&domain.User{Email: request.Email}, nil)

		_, err := uc.Signup(context.Background(), request)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	password := "s3cret-pass"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &domain.User{
		ID:       primitive.NewObjectID(),
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: string(hashed),
	}

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		resp, err := uc.Login(context.Background(), domain.LoginRequest{Email: user.Email, Password: password})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := uc.Login(context.Background(), domain.LoginRequest{Email: user.Email, Password: "not-it"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), domain.LoginRequest{Email: "ghost@example.com", Password: password})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestRefreshToken(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Ada", Email: "ada@example.com"}

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)

		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		userRepo.On("GetByID", mock.Anything, mock.Anything).Return(user, nil)

		signup, err := uc.Signup(context.Background(), domain.SignupRequest{Name: user.Name, Email: user.Email, Password: "s3cret-pass"})
		assert.NoError(t, err)

		resp, err := uc.RefreshToken(context.Background(), domain.RefreshTokenRequest{RefreshToken: signup.RefreshToken})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		uc := NewAuthUsecase(userRepo, testTokens, 2*time.Second)

		_, err := uc.RefreshToken(context.Background(), domain.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
