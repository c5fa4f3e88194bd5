package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/domain/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUser 模拟鉴权中间件写入的用户身份。
func withUser(userID primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("x-user-id", userID.Hex())
		c.Next()
	}
}

func TestGetRecommendationsEndpoint(t *testing.T) {
	userID := primitive.NewObjectID()

	newRouter := func(usecase *mocks.RecommendationUsecase) *gin.Engine {
		router := gin.New()
		c := NewRecommendationController(usecase)
		router.GET("/recommendations", withUser(userID), c.GetRecommendations)
		return router
	}

	t.Run("defaults to hybrid algorithm and limit ten", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)
		usecase.On("GetHybridRecommendations", mock.Anything, userID, 10).
			Return([]domain.MediaItem{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("limit is capped at fifty", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)
		usecase.On("GetHybridRecommendations", mock.Anything, userID, 50).
			Return([]domain.MediaItem{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recommendations?limit=500", nil)
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("standard algorithm forwards the filter", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)
		filter := domain.MediaFilter{Type: domain.MediaTypeMovie, Genre: "sci-fi"}
		usecase.On("GetUserRecommendations", mock.Anything, userID, 10, filter).
			Return([]domain.MediaItem{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recommendations?algorithm=standard&type=movie&genre=sci-fi", nil)
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("unknown algorithm is rejected", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recommendations?algorithm=psychic", nil)
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTrendingEndpoint(t *testing.T) {
	t.Run("refresh query bypasses the cache", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)
		usecase.On("GetTrendingMedia", mock.Anything, 10, true).
			Return([]domain.MediaItem{{Title: "hot"}}, nil)

		router := gin.New()
		router.GET("/recommendations/trending", NewRecommendationController(usecase).GetTrending)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recommendations/trending?refresh=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "trending")
		assert.Contains(t, body, "total")
	})
}

func TestGetSimilarEndpoint(t *testing.T) {
	t.Run("bad object id is a client error", func(t *testing.T) {
		usecase := new(mocks.RecommendationUsecase)
		router := gin.New()
		router.GET("/media/:id/similar", NewRecommendationController(usecase).GetSimilar)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/media/not-an-id/similar", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		usecase.AssertNotCalled(t, "GetSimilarMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown media returns an empty list", func(t *testing.T) {
		mediaID := primitive.NewObjectID()
		usecase := new(mocks.RecommendationUsecase)
		usecase.On("GetSimilarMedia", mock.Anything, mediaID, 10, false).
			Return([]domain.MediaItem{}, nil)

		router := gin.New()
		router.GET("/media/:id/similar", NewRecommendationController(usecase).GetSimilar)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/media/"+mediaID.Hex()+"/similar", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})
}

func TestTrackEngagementEndpoint(t *testing.T) {
	userID := primitive.NewObjectID()
	mediaID := primitive.NewObjectID()

	newRouter := func(usecase *mocks.EngagementUsecase) *gin.Engine {
		router := gin.New()
		c := NewEngagementController(usecase)
		router.POST("/recommendations/engagement", withUser(userID), c.Track)
		router.POST("/recommendations/exclude/:id", withUser(userID), c.Exclude)
		return router
	}

	t.Run("valid event is recorded", func(t *testing.T) {
		usecase := new(mocks.EngagementUsecase)
		usecase.On("TrackEngagement", mock.Anything, userID, mediaID, domain.ActionPageView,
			map[string]string{"duration": "90"}).Return(nil)

		body := `{"media_id":"` + mediaID.Hex() + `","action":"page_view","metadata":{"duration":"90"}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommendations/engagement", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("missing action is a client error", func(t *testing.T) {
		usecase := new(mocks.EngagementUsecase)

		body := `{"media_id":"` + mediaID.Hex() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommendations/engagement", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exclude without body uses the default window", func(t *testing.T) {
		usecase := new(mocks.EngagementUsecase)
		usecase.On("ExcludeMedia", mock.Anything, userID, mediaID, 6).
			Return(&domain.ExclusionEntry{UserID: userID, MediaID: mediaID}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommendations/exclude/"+mediaID.Hex(), nil)
		newRouter(usecase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		usecase.AssertExpectations(t)
	})
}
