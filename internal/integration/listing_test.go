package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/model"
	"github.com/forkful/recipe-api/internal/query"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/testhelpers"
)

// Exercises the listing and search paths against a real PostgreSQL
// instance, where JSONB columns and NULLS LAST ordering behave exactly
// as in production.
func TestListingAndSearchOnPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	recipes := make([]model.Recipe, 0, 12)
	for i := 0; i < 10; i++ {
		title := fmt.Sprintf("Recipe %02d", i+1)
		cuisine := "Italian"
		if i%2 == 1 {
			cuisine = "Indian"
		}
		rating := 5.0 - 0.3*float64(i)
		totalTime := 20 + 10*i
		recipes = append(recipes, model.Recipe{
			Title:     &title,
			Cuisine:   &cuisine,
			Rating:    &rating,
			TotalTime: &totalTime,
			Nutrients: model.JSONBStringMap{"calories": fmt.Sprintf("%d kcal", 200+50*i)},
		})
	}
	unratedTitle := "Unrated Special"
	badCalories := "Bad Calories"
	recipes = append(recipes,
		model.Recipe{Title: &unratedTitle},
		model.Recipe{Title: &badCalories, Nutrients: model.JSONBStringMap{"calories": "varies"}},
	)
	require.NoError(t, db.Create(&recipes).Error)

	svc := service.NewRecipeService(db, nil, 100)
	ctx := context.Background()

	t.Run("pagination with nulls last", func(t *testing.T) {
		page1, err := svc.List(ctx, 1, 5)
		require.NoError(t, err)
		assert.EqualValues(t, 12, page1.Total)
		require.Len(t, page1.Data, 5)
		assert.Equal(t, "Recipe 01", *page1.Data[0].Title)

		page3, err := svc.List(ctx, 3, 5)
		require.NoError(t, err)
		require.Len(t, page3.Data, 2)
		// the two unrated rows sort after every rated row
		assert.Nil(t, page3.Data[0].Rating)
		assert.Nil(t, page3.Data[1].Rating)
	})

	t.Run("pushdown filters", func(t *testing.T) {
		results, err := svc.Search(ctx, query.SearchFilters{
			Cuisine: "Italian",
			Rating:  ">=4.0",
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Equal(t, "Italian", *r.Cuisine)
			assert.GreaterOrEqual(t, *r.Rating, 4.0)
		}
	})

	t.Run("residual calories filter over jsonb", func(t *testing.T) {
		results, err := svc.Search(ctx, query.SearchFilters{Calories: "<300"})
		require.NoError(t, err)
		require.Len(t, results, 2) // 200 and 250 kcal rows only
		for _, r := range results {
			n, ok := query.CaloriesValue(r.Nutrients)
			require.True(t, ok)
			assert.Less(t, n, 300)
		}
	})

	t.Run("title substring is case-insensitive", func(t *testing.T) {
		results, err := svc.Search(ctx, query.SearchFilters{Title: "uNrAtEd"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Unrated Special", *results[0].Title)
	})
}
