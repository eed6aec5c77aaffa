package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON array in a
// single text column. Encoding and decoding are a pure round trip.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as "[]".
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	encoded, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("error encoding string list: %w", err)
	}

	return string(encoded), nil
}

// Scan implements [sql.Scanner] for text, blob and NULL columns.
func (s *StringList) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*s = StringList{}
		return nil
	case string:
		raw = []byte(value)
	case []byte:
		raw = value
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}

	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error decoding string list: %w", err)
	}
	if decoded == nil {
		decoded = []string{}
	}

	*s = decoded
	return nil
}
