package route

import (
	"time"

	"github.com/catalogo-app/recommendation-backend/api/controller"
	"github.com/catalogo-app/recommendation-backend/bootstrap"
	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/catalogo-app/recommendation-backend/repository"
	"github.com/catalogo-app/recommendation-backend/usecase"
	"github.com/gin-gonic/gin"
)

func NewAuthRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)
	tokens := usecase.TokenConfig{
		AccessSecret:  env.AccessTokenSecret,
		RefreshSecret: env.RefreshTokenSecret,
		AccessExpiry:  env.AccessTokenExpiryHour,
		RefreshExpiry: env.RefreshTokenExpiryHour,
	}
	ac := controller.NewAuthController(usecase.NewAuthUsecase(userRepo, tokens, timeout))

	group.POST("/signup", ac.Signup)
	group.POST("/login", ac.Login)
	group.POST("/refresh", ac.RefreshToken)
}
