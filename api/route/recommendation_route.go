package route

import (
	"time"

	"github.com/catalogo-app/recommendation-backend/api/controller"
	"github.com/catalogo-app/recommendation-backend/bootstrap"
	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/engine"
	"github.com/catalogo-app/recommendation-backend/metrics"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/catalogo-app/recommendation-backend/repository"
	"github.com/catalogo-app/recommendation-backend/usecase"
	"github.com/gin-gonic/gin"
)

func NewRecommendationRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, eng *engine.Engine, emitter *metrics.PrometheusEmitter, public *gin.RouterGroup, protected *gin.RouterGroup) {
	mediaRepo := repository.NewMediaRepository(db, domain.CollectionMedia)
	signalRepo := repository.NewSignalRepository(db,
		domain.CollectionReview,
		domain.CollectionFavorite,
		domain.CollectionSaved,
		domain.CollectionOnboardingSelection,
	)
	engagementRepo := repository.NewEngagementRepository(db, domain.CollectionEngagementEvent, domain.CollectionMedia)
	exclusionRepo := repository.NewExclusionRepository(db, domain.CollectionExclusion)

	cacheTTL := time.Duration(env.CacheTTLMinutes) * time.Minute
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	rc := controller.NewRecommendationController(usecase.NewRecommendationUsecase(
		eng, mediaRepo, signalRepo, engagementRepo, exclusionRepo, cacheTTL, timeout,
	))
	ec := controller.NewEngagementController(usecase.NewEngagementUsecase(
		eng, engagementRepo, exclusionRepo, emitter, timeout,
	))
	mc := controller.NewMetricsController(usecase.NewMetricsUsecase(eng, engagementRepo, timeout))

	protected.GET("/recommendations", rc.GetRecommendations)
	protected.POST("/recommendations/custom", rc.GetCustom)
	protected.POST("/recommendations/engagement", ec.Track)
	protected.POST("/recommendations/exclude/:id", ec.Exclude)
	protected.GET("/recommendations/metrics", mc.GetMetrics)

	public.GET("/recommendations/trending", rc.GetTrending)
	public.GET("/media/:id/similar", rc.GetSimilar)
}
