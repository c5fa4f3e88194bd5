package controller

import (
	"net/http"
	"strconv"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultRecommendLimit = 10
	maxRecommendLimit     = 50
)

type RecommendationController struct {
	RecommendationUsecase domain.RecommendationUsecase
}

func NewRecommendationController(usecase domain.RecommendationUsecase) *RecommendationController {
	return &RecommendationController{
		RecommendationUsecase: usecase,
	}
}

// parseLimit limit 越界时钳到上限而不是报错，客户端传多少都能拿到结果。
func parseLimit(ctx *gin.Context, fallback int) int {
	raw := ctx.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxRecommendLimit {
		return maxRecommendLimit
	}
	return limit
}

func parseRefresh(ctx *gin.Context) bool {
	return ctx.Query("refresh") == "true"
}

func parseMediaFilter(ctx *gin.Context) domain.MediaFilter {
	filter := domain.MediaFilter{
		Type:  domain.MediaType(ctx.Query("type")),
		Genre: ctx.Query("genre"),
	}
	if v, err := strconv.Atoi(ctx.Query("start_year")); err == nil {
		filter.StartYear = v
	}
	if v, err := strconv.Atoi(ctx.Query("end_year")); err == nil {
		filter.EndYear = v
	}
	if v, err := strconv.ParseFloat(ctx.Query("min_rating"), 64); err == nil {
		filter.MinRating = v
	}
	return filter
}

func userIDFromContext(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.GetString("x-user-id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_USER", "invalid user identity")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}
	limit := parseLimit(ctx, defaultRecommendLimit)

	var recommendations []domain.MediaItem
	var err error
	switch ctx.DefaultQuery("algorithm", "hybrid") {
	case "hybrid":
		recommendations, err = c.RecommendationUsecase.GetHybridRecommendations(ctx.Request.Context(), userID, limit)
	case "cold_start":
		recommendations, err = c.RecommendationUsecase.GetColdStartRecommendations(ctx.Request.Context(), userID, limit)
	case "standard":
		recommendations, err = c.RecommendationUsecase.GetUserRecommendations(ctx.Request.Context(), userID, limit, parseMediaFilter(ctx))
	default:
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ALGORITHM", "algorithm must be one of hybrid, cold_start, standard")
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}

func (c *RecommendationController) GetTrending(ctx *gin.Context) {
	limit := parseLimit(ctx, defaultRecommendLimit)

	trending, err := c.RecommendationUsecase.GetTrendingMedia(ctx.Request.Context(), limit, parseRefresh(ctx))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	SuccessResponse(ctx, "trending", trending, len(trending))
}

func (c *RecommendationController) GetSimilar(ctx *gin.Context) {
	mediaID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "media id must be a valid object id")
		return
	}
	limit := parseLimit(ctx, defaultRecommendLimit)

	similar, err := c.RecommendationUsecase.GetSimilarMedia(ctx.Request.Context(), mediaID, limit, parseRefresh(ctx))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	SuccessResponse(ctx, "similar", similar, len(similar))
}

type customRecommendationRequest struct {
	Type              string   `json:"type"`
	Genre             string   `json:"genre"`
	StartYear         int      `json:"start_year"`
	EndYear           int      `json:"end_year"`
	MinRating         float64  `json:"min_rating"`
	ReferenceMediaIDs []string `json:"reference_media_ids"`
	Limit             int      `json:"limit"`
}

func (c *RecommendationController) GetCustom(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	var request customRecommendationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	referenceIDs := make([]primitive.ObjectID, 0, len(request.ReferenceMediaIDs))
	for _, raw := range request.ReferenceMediaIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "reference media id must be a valid object id")
			return
		}
		referenceIDs = append(referenceIDs, id)
	}

	limit := request.Limit
	if limit <= 0 {
		limit = defaultRecommendLimit
	}
	if limit > maxRecommendLimit {
		limit = maxRecommendLimit
	}
	filter := domain.MediaFilter{
		Type:      domain.MediaType(request.Type),
		Genre:     request.Genre,
		StartYear: request.StartYear,
		EndYear:   request.EndYear,
		MinRating: request.MinRating,
	}

	recommendations, err := c.RecommendationUsecase.GetCustomRecommendations(ctx.Request.Context(), userID, filter, referenceIDs, limit)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}
