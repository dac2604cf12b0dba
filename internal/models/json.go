package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON is an opaque jsonb column
type JSON map[string]interface{}

// Value implements the driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan JSON value: unsupported type")
	}

	return json.Unmarshal(bytes, j)
}

// StringArray is a list of strings stored as a jsonb array
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringArray value: unsupported type")
	}

	return json.Unmarshal(bytes, a)
}

// Contains reports exact, case-sensitive membership
func (a StringArray) Contains(s string) bool {
	for _, item := range a {
		if item == s {
			return true
		}
	}
	return false
}
