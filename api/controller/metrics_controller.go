package controller

import (
	"net/http"
	"strconv"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	MetricsUsecase domain.MetricsUsecase
}

func NewMetricsController(usecase domain.MetricsUsecase) *MetricsController {
	return &MetricsController{
		MetricsUsecase: usecase,
	}
}

func (c *MetricsController) GetMetrics(ctx *gin.Context) {
	windowDays := 0
	if v, err := strconv.Atoi(ctx.Query("window_days")); err == nil {
		windowDays = v
	}

	report, err := c.MetricsUsecase.GetMetrics(ctx.Request.Context(), windowDays)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"metrics": report})
}
