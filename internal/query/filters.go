package query

import (
	"strings"

	"gorm.io/gorm"
)

// SearchFilters enumerates the recognized search parameters. Every field
// is optional; a blank or malformed value contributes no predicate.
// Predicates combine with AND.
type SearchFilters struct {
	Title     string
	Cuisine   string
	Serves    string
	Rating    string
	TotalTime string
	PrepTime  string
	CookTime  string
	Calories  string
}

// Pushdown applies every store-evaluable predicate to db and returns the
// narrowed query. Calories is excluded: nutrient values live inside the
// JSONB document as display strings, so that predicate runs after the
// fetch (see Residual and FilterByCalories).
func (f SearchFilters) Pushdown(db *gorm.DB) *gorm.DB {
	if title := strings.TrimSpace(f.Title); title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}
	if cuisine := strings.TrimSpace(f.Cuisine); cuisine != "" {
		db = db.Where("cuisine = ?", cuisine)
	}
	if serves := strings.TrimSpace(f.Serves); serves != "" {
		db = db.Where("serves = ?", serves)
	}
	db = applyComparison(db, "rating", f.Rating)
	db = applyComparison(db, "total_time", f.TotalTime)
	db = applyComparison(db, "prep_time", f.PrepTime)
	db = applyComparison(db, "cook_time", f.CookTime)
	return db
}

// Residual returns the calories comparison to evaluate in memory, if one
// was supplied and parses.
func (f SearchFilters) Residual() (Comparison, bool) {
	return ParseComparison(f.Calories)
}

// applyComparison narrows db by a parsed numeric filter, or leaves it
// untouched when the value is blank or malformed. Column names are fixed
// and Op is a closed set, so the concatenation cannot inject.
func applyComparison(db *gorm.DB, column, raw string) *gorm.DB {
	cmp, ok := ParseComparison(raw)
	if !ok {
		return db
	}
	return db.Where(column+" "+string(cmp.Op)+" ?", cmp.Value)
}
