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

func NewMediaRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	mediaRepo := repository.NewMediaRepository(db, domain.CollectionMedia)
	mc := controller.NewMediaController(usecase.NewMediaUsecase(mediaRepo, timeout))

	group.GET("/media", mc.List)
	group.GET("/media/:id", mc.GetByID)
}
