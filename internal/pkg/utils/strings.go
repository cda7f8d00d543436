package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is stored as a JSON array in a text column. In request
// bodies it accepts either a single string or a list of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return ListToString(l), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = StringToList(v)
	case []byte:
		*l = StringToList(string(v))
	default:
		return fmt.Errorf("utils: cannot scan %T into StringList", src)
	}
	return nil
}

// GormDataType keeps the column portable across sqlite, postgres and mysql.
func (StringList) GormDataType() string { return "text" }

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = normalize([]string{single})
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = normalize(many)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}

func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// ListToString converts a list to its JSON text form.
func ListToString(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(list)
	return string(data)
}

// StringToList converts stored text back to a list.
func StringToList(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return normalize(strings.Split(s, ","))
	}
	return list
}

// SplitParam reads a query value that may be comma separated.
func SplitParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalize(strings.Split(s, ","))
}

func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
