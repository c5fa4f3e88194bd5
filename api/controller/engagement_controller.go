package controller

import (
	"net/http"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EngagementController struct {
	EngagementUsecase domain.EngagementUsecase
}

func NewEngagementController(usecase domain.EngagementUsecase) *EngagementController {
	return &EngagementController{
		EngagementUsecase: usecase,
	}
}

type trackEngagementRequest struct {
	MediaID  string            `json:"media_id" binding:"required"`
	Action   string            `json:"action" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

func (c *EngagementController) Track(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	var request trackEngagementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	mediaID, err := primitive.ObjectIDFromHex(request.MediaID)
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "media id must be a valid object id")
		return
	}

	err = c.EngagementUsecase.TrackEngagement(
		ctx.Request.Context(),
		userID, mediaID,
		domain.EngagementAction(request.Action),
		request.Metadata,
	)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "engagement recorded"})
}

type excludeMediaRequest struct {
	Months int `json:"months"`
}

func (c *EngagementController) Exclude(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}
	mediaID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "media id must be a valid object id")
		return
	}

	// 不带 body 时默认屏蔽 6 个月
	request := excludeMediaRequest{Months: 6}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
	}

	entry, err := c.EngagementUsecase.ExcludeMedia(ctx.Request.Context(), userID, mediaID, request.Months)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"exclusion": entry})
}
