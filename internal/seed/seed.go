// Package seed imports the scraped recipes dataset into the store.
package seed

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/model"
)

const batchSize = 500

// rawRecipe mirrors one dataset entry. The numeric fields arrive as
// numbers or strings depending on the scrape, so they are coerced after
// decoding; anything non-numeric becomes NULL.
type rawRecipe struct {
	Continent    string            `json:"Contient"` // sic, dataset header typo
	CountryState string            `json:"Country_State"`
	Cuisine      string            `json:"cuisine"`
	Title        string            `json:"title"`
	URL          string            `json:"URL"`
	Rating       interface{}       `json:"rating"`
	PrepTime     interface{}       `json:"prep_time"`
	CookTime     interface{}       `json:"cook_time"`
	TotalTime    interface{}       `json:"total_time"`
	Description  string            `json:"description"`
	Ingredients  []string          `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Nutrients    map[string]string `json:"nutrients"`
	Serves       string            `json:"serves"`
}

// Load reads a recipes JSON dump and normalizes it into store rows.
func Load(path string) ([]model.Recipe, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var entries []rawRecipe
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	recipes := make([]model.Recipe, 0, len(entries))
	for _, e := range entries {
		recipes = append(recipes, toRecipe(e))
	}
	return recipes, nil
}

// Import inserts the rows in batches.
func Import(db *gorm.DB, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	if err := db.CreateInBatches(recipes, batchSize).Error; err != nil {
		return fmt.Errorf("inserting recipes: %w", err)
	}
	return nil
}

func toRecipe(raw rawRecipe) model.Recipe {
	return model.Recipe{
		Continent:    strOrNil(raw.Continent),
		CountryState: strOrNil(raw.CountryState),
		Cuisine:      strOrNil(raw.Cuisine),
		Title:        strOrNil(raw.Title),
		URL:          strOrNil(raw.URL),
		Rating:       floatOrNil(raw.Rating),
		PrepTime:     intOrNil(raw.PrepTime),
		CookTime:     intOrNil(raw.CookTime),
		TotalTime:    intOrNil(raw.TotalTime),
		Description:  strOrNil(raw.Description),
		Ingredients:  raw.Ingredients,
		Instructions: raw.Instructions,
		Nutrients:    raw.Nutrients,
		Serves:       strOrNil(raw.Serves),
	}
}

// strOrNil maps blank strings to NULL so "unknown" never round-trips
// as the empty string.
func strOrNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// floatOrNil coerces a JSON number or numeric string; anything else is NULL.
func floatOrNil(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return nil
		}
		return &n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func intOrNil(v interface{}) *int {
	f := floatOrNil(v)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}
