package engine

import (
	"testing"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestColdStartRank(t *testing.T) {
	e := New(DefaultConfig())

	ratedItem := func(title string, rating float64, mt domain.MediaType, genres ...string) domain.MediaItem {
		m := namedItem(title, mt, genres...)
		m.Rating = rating
		return m
	}

	t.Run("without onboarding picks popularity order", func(t *testing.T) {
		a := ratedItem("a", 5.0, domain.MediaTypeMovie)
		b := ratedItem("b", 3.0, domain.MediaTypeMovie)
		c := ratedItem("c", 4.0, domain.MediaTypeMovie)
		perf := map[primitive.ObjectID]float64{b.ID: 1.0}

		got := e.ColdStartRank([]domain.MediaItem{a, b, c}, perf, InitialPreferences{}, 2)
		assert.Equal(t, []string{"b", "a"}, titles(got))
	})

	t.Run("onboarding matches can reorder the pool", func(t *testing.T) {
		a := ratedItem("blockbuster", 5.0, domain.MediaTypeMovie, "action")
		b := ratedItem("niche", 4.0, domain.MediaTypeGame, "rpg")
		initial := InitialPreferences{
			Genres: map[string]int{"rpg": 3},
			Types:  map[domain.MediaType]int{domain.MediaTypeGame: 3},
		}

		got := e.ColdStartRank([]domain.MediaItem{a, b}, nil, initial, 2)
		assert.Equal(t, []string{"niche", "blockbuster"}, titles(got))
	})

	t.Run("match rescoring only sees the truncated pool", func(t *testing.T) {
		pool := make([]domain.MediaItem, 0, 4)
		for i, title := range []string{"p1", "p2", "p3"} {
			pool = append(pool, ratedItem(title, 5.0-float64(i)*0.5, domain.MediaTypeMovie, "action"))
		}
		// 热度掉出 3×limit 池子的候选，再匹配也进不了结果
		tail := ratedItem("tail", 0.5, domain.MediaTypeGame, "rpg")
		pool = append(pool, tail)

		initial := InitialPreferences{
			Genres: map[string]int{"rpg": 100},
			Types:  map[domain.MediaType]int{domain.MediaTypeGame: 100},
		}
		got := e.ColdStartRank(pool, nil, initial, 1)
		assert.NotContains(t, titles(got), "tail")
		assert.Equal(t, []string{"p1"}, titles(got))
	})

	t.Run("pool smaller than limit returns everything", func(t *testing.T) {
		a := ratedItem("only", 2.0, domain.MediaTypeBook, "poetry")
		got := e.ColdStartRank([]domain.MediaItem{a}, nil, InitialPreferences{}, 10)
		assert.Equal(t, []string{"only"}, titles(got))
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.Empty(t, e.ColdStartRank(nil, nil, InitialPreferences{}, 5))
	})
}
