package model

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBStringMap is a custom type for handling string-to-string maps in JSONB.
// Nutrient labels are free-form, so the keys are not a fixed set.
type JSONBStringMap map[string]string

// Value implements the driver.Valuer interface
func (m JSONBStringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBStringMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBStringMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Recipe is a single imported recipe row. Every scalar is nullable: the
// dataset frequently omits ratings and times, and NULL must stay
// distinguishable from zero.
type Recipe struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Continent    *string          `gorm:"size:255" json:"continent"`
	CountryState *string          `gorm:"size:255" json:"country_state"`
	Cuisine      *string          `gorm:"size:255" json:"cuisine"`
	Title        *string          `gorm:"size:255" json:"title"`
	URL          *string          `gorm:"size:255" json:"url"`
	Rating       *float64         `json:"rating"`
	PrepTime     *int             `json:"prep_time"`
	CookTime     *int             `json:"cook_time"`
	TotalTime    *int             `json:"total_time"`
	Description  *string          `gorm:"type:text" json:"description"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb" json:"instructions"`
	Nutrients    JSONBStringMap   `gorm:"type:jsonb" json:"nutrients"`
	Serves       *string          `gorm:"size:255" json:"serves"`
}

// TableName overrides the default table name
func (Recipe) TableName() string {
	return "recipes"
}
