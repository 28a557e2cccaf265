package query

import (
	"strconv"

	"github.com/forkful/recipe-api/internal/model"
)

// CaloriesValue extracts the numeric magnitude from a nutrients entry such
// as "389 kcal". Only the digits are kept; a missing or digit-free entry
// yields ok=false.
func CaloriesValue(nutrients model.JSONBStringMap) (int, bool) {
	raw, ok := nutrients["calories"]
	if !ok {
		return 0, false
	}

	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FilterByCalories keeps the rows whose extracted calories value satisfies
// cmp, preserving input order. Rows without a usable calories entry never
// match, regardless of the operator.
func FilterByCalories(recipes []model.Recipe, cmp Comparison) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		n, ok := CaloriesValue(r.Nutrients)
		if !ok {
			continue
		}
		if cmp.Matches(float64(n)) {
			out = append(out, r)
		}
	}
	return out
}
