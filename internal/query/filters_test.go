package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/recipe-api/internal/model"
)

// buildSQL renders the pushdown query without executing it.
func buildSQL(t *testing.T, f SearchFilters) (string, []interface{}) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	tx := f.Pushdown(db.Session(&gorm.Session{DryRun: true}).Model(&model.Recipe{})).Find(&[]model.Recipe{})
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestPushdownNoFilters(t *testing.T) {
	sql, vars := buildSQL(t, SearchFilters{})
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, vars)
}

func TestPushdownTitleSubstring(t *testing.T) {
	sql, vars := buildSQL(t, SearchFilters{Title: "Pasta"})
	assert.Contains(t, sql, "LOWER(title) LIKE ?")
	assert.Contains(t, vars, "%pasta%")
}

func TestPushdownBlankTitleIgnored(t *testing.T) {
	sql, _ := buildSQL(t, SearchFilters{Title: "   "})
	assert.NotContains(t, sql, "title")
}

func TestPushdownCuisineExact(t *testing.T) {
	sql, vars := buildSQL(t, SearchFilters{Cuisine: " Italian "})
	assert.Contains(t, sql, "cuisine = ?")
	assert.Contains(t, vars, "Italian")
}

func TestPushdownNumericComparisons(t *testing.T) {
	sql, vars := buildSQL(t, SearchFilters{
		Rating:    ">=4.5",
		TotalTime: "<=120",
		PrepTime:  "15",
		CookTime:  ">10",
	})
	assert.Contains(t, sql, "rating >= ?")
	assert.Contains(t, sql, "total_time <= ?")
	assert.Contains(t, sql, "prep_time = ?")
	assert.Contains(t, sql, "cook_time > ?")
	assert.Contains(t, vars, 4.5)
	assert.Contains(t, vars, 120.0)
}

func TestPushdownMalformedComparisonIgnored(t *testing.T) {
	sql, _ := buildSQL(t, SearchFilters{Rating: "abc"})
	assert.NotContains(t, sql, "rating")
}

func TestPushdownExcludesCalories(t *testing.T) {
	sql, _ := buildSQL(t, SearchFilters{Calories: "<300"})
	assert.NotContains(t, sql, "calories")

	cmp, ok := SearchFilters{Calories: "<300"}.Residual()
	assert.True(t, ok)
	assert.Equal(t, Comparison{Op: OpLt, Value: 300}, cmp)
}

func TestResidualMalformed(t *testing.T) {
	_, ok := SearchFilters{Calories: "lots"}.Residual()
	assert.False(t, ok)

	_, ok = SearchFilters{}.Residual()
	assert.False(t, ok)
}
