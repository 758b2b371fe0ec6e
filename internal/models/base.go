// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type BaseModel struct {
	gorm.Model
}

// JSONMap is a free-form JSONB column (external ids, alert payloads,
// measurement metadata, report bodies).
type JSONMap map[string]interface{}

// Value serializes as a string rather than raw bytes so the JSON operators
// work on SQLite too, where a blob is not valid JSON input.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSONB column into the map.
func (m *JSONMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = JSONMap{}
		return nil
	default:
		return fmt.Errorf("JSONMap: expected []byte or string, got %T", src)
	}
}

// SubMap returns a nested object value, or nil when absent or not an object.
func (m JSONMap) SubMap(key string) JSONMap {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case JSONMap:
		return v
	case map[string]interface{}:
		return JSONMap(v)
	default:
		return nil
	}
}

// GetString returns a string value, "" when absent or of another type.
func (m JSONMap) GetString(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
