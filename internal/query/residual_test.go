package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkful/recipe-api/internal/model"
)

func TestCaloriesValue(t *testing.T) {
	tests := []struct {
		name      string
		nutrients model.JSONBStringMap
		want      int
		ok        bool
	}{
		{"plain display string", model.JSONBStringMap{"calories": "389 kcal"}, 389, true},
		{"thousands separator", model.JSONBStringMap{"calories": "1,200 kcal"}, 1200, true},
		{"bare number", model.JSONBStringMap{"calories": "250"}, 250, true},
		{"no digits", model.JSONBStringMap{"calories": "unknown"}, 0, false},
		{"empty value", model.JSONBStringMap{"calories": ""}, 0, false},
		{"key absent", model.JSONBStringMap{"protein": "12 g"}, 0, false},
		{"nil map", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CaloriesValue(tt.nutrients)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFilterByCalories(t *testing.T) {
	recipes := []model.Recipe{
		{ID: 1, Nutrients: model.JSONBStringMap{"calories": "250 kcal"}},
		{ID: 2, Nutrients: model.JSONBStringMap{"calories": "400 kcal"}},
		{ID: 3}, // no nutrients at all
		{ID: 4, Nutrients: model.JSONBStringMap{"calories": "unknown"}},
		{ID: 5, Nutrients: model.JSONBStringMap{"calories": "100 kcal"}},
	}

	out := FilterByCalories(recipes, Comparison{Op: OpLt, Value: 300})

	ids := make([]uint, 0, len(out))
	for _, r := range out {
		ids = append(ids, r.ID)
	}
	// order preserved; missing and non-numeric entries never match,
	// even under a less-than operator
	assert.Equal(t, []uint{1, 5}, ids)
}

func TestFilterByCaloriesExactMatch(t *testing.T) {
	recipes := []model.Recipe{
		{ID: 1, Nutrients: model.JSONBStringMap{"calories": "300 kcal"}},
		{ID: 2, Nutrients: model.JSONBStringMap{"calories": "301 kcal"}},
	}

	out := FilterByCalories(recipes, Comparison{Op: OpEq, Value: 300})
	assert.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}
