package repository

import (
	"testing"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterQuery(t *testing.T) {
	t.Run("zero value filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, filterQuery(domain.MediaFilter{}))
	})

	t.Run("year range needs both bounds", func(t *testing.T) {
		q := filterQuery(domain.MediaFilter{StartYear: 2000})
		assert.NotContains(t, q, "year")

		q = filterQuery(domain.MediaFilter{StartYear: 2000, EndYear: 2010})
		assert.Equal(t, bson.M{"$gte": 2000, "$lte": 2010}, q["year"])
	})

	t.Run("set fields become query terms", func(t *testing.T) {
		q := filterQuery(domain.MediaFilter{
			Type:      domain.MediaTypeMovie,
			Genre:     "sci-fi",
			MinRating: 4.0,
		})
		assert.Equal(t, domain.MediaTypeMovie, q["type"])
		assert.Equal(t, "sci-fi", q["genres"])
		assert.Equal(t, bson.M{"$gte": 4.0}, q["rating"])
	})
}

func TestPaginate(t *testing.T) {
	items := []domain.MediaItem{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	t.Run("skip beyond length is empty", func(t *testing.T) {
		assert.Empty(t, paginate(items, 5, 10))
	})

	t.Run("windowing", func(t *testing.T) {
		page := paginate(items, 1, 1)
		assert.Len(t, page, 1)
		assert.Equal(t, "b", page[0].Title)
	})

	t.Run("zero limit means no cap", func(t *testing.T) {
		assert.Len(t, paginate(items, 0, 0), 3)
	})
}
