package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaController struct {
	MediaUsecase domain.MediaUsecase
}

func NewMediaController(usecase domain.MediaUsecase) *MediaController {
	return &MediaController{
		MediaUsecase: usecase,
	}
}

func (c *MediaController) List(ctx *gin.Context) {
	opts := domain.ListOptions{
		Limit: int64(parseLimit(ctx, 20)),
		Sort:  ctx.DefaultQuery("sort", "rating"),
	}
	if v, err := strconv.ParseInt(ctx.Query("skip"), 10, 64); err == nil && v > 0 {
		opts.Skip = v
	}

	items, total, err := c.MediaUsecase.List(ctx.Request.Context(), parseMediaFilter(ctx), opts)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"media": items,
		"total": total,
	})
}

func (c *MediaController) GetByID(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "media id must be a valid object id")
		return
	}

	media, err := c.MediaUsecase.GetByID(ctx.Request.Context(), id)
	if errors.Is(err, domain.ErrMediaNotFound) {
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "media not found")
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"media": media})
}
