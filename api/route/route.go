package route

import (
	"time"

	"github.com/catalogo-app/recommendation-backend/api/middleware"
	"github.com/catalogo-app/recommendation-backend/bootstrap"
	"github.com/catalogo-app/recommendation-backend/engine"
	"github.com/catalogo-app/recommendation-backend/metrics"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, router *gin.Engine) {
	eng := engine.New(engine.DefaultConfig())
	emitter := metrics.NewPrometheusEmitter()

	publicRouter := router.Group("")
	NewAuthRouter(env, timeout, db, publicRouter)
	NewMediaRouter(env, timeout, db, publicRouter)
	publicRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protectedRouter := router.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	NewRecommendationRouter(env, timeout, db, eng, emitter, publicRouter, protectedRouter)
}
