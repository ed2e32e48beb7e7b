// Package opendata parses the XML-derived JSON records published in the
// Assemblée Nationale bulk exports. The upstream payloads are structurally
// irregular: scalar fields may arrive as bare strings, as objects carrying an
// explicit xsi:nil marker with an optional text payload, or as singleton
// lists. All of that ambiguity is absorbed here so the rest of the codebase
// only ever sees strict typed records.
package opendata

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
)

var warnLog *logger.Logger

// SetWarnLogger installs the logger used for recoverable parse warnings
// (unparseable dates). Safe to leave unset; warnings are then dropped.
func SetWarnLogger(log *logger.Logger) {
	warnLog = log
}

func warn(msg string, keysAndValues ...interface{}) {
	if warnLog != nil {
		warnLog.Warn(msg, keysAndValues...)
	}
}

// NilString is a scalar that may arrive as a plain string, an xsi:nil-marked
// object with a "#text"/"text"/"value" payload, or a list of either. Empty or
// whitespace-only text normalizes to the null value.
type NilString struct {
	Value string
	Valid bool
}

func (s *NilString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if text, ok := textValue(v); ok {
		s.Value = text
		s.Valid = true
	} else {
		s.Value = ""
		s.Valid = false
	}
	return nil
}

func (s NilString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// Ptr returns the normalized value as a nullable string.
func (s NilString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

func textValue(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return "", false
		}
		return trimmed, true
	case []interface{}:
		for _, item := range val {
			if text, ok := textValue(item); ok {
				return text, true
			}
		}
	case map[string]interface{}:
		if nilMarked(val) {
			return "", false
		}
		for _, key := range []string{"#text", "text", "value"} {
			if raw, ok := val[key].(string); ok {
				if trimmed := strings.TrimSpace(raw); trimmed != "" {
					return trimmed, true
				}
			}
		}
	}
	return "", false
}

func nilMarked(obj map[string]interface{}) bool {
	switch marker := obj["@xsi:nil"].(type) {
	case string:
		return strings.EqualFold(strings.TrimSpace(marker), "true")
	case bool:
		return marker
	}
	return false
}

// NilDate is a calendar date with the same nil/text unwrapping as NilString.
// A full ISO timestamp contributes only its date component. A non-empty value
// that fails to parse is treated as null with a warning, not a hard failure.
type NilDate struct {
	Value time.Time
	Valid bool
}

func (d *NilDate) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	text, ok := textValue(v)
	if !ok {
		d.Value, d.Valid = time.Time{}, false
		return nil
	}
	parsed, ok := parseDate(text)
	if !ok {
		warn("Unparseable date treated as null", "value", text)
		d.Value, d.Valid = time.Time{}, false
		return nil
	}
	d.Value, d.Valid = parsed, true
	return nil
}

func (d NilDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value.Format("2006-01-02"))
}

func (d NilDate) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// NilTime is the timestamp variant used by document life-cycle dates, which
// the source publishes as timezone-aware ISO timestamps.
type NilTime struct {
	Value time.Time
	Valid bool
}

func (t *NilTime) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	text, ok := textValue(v)
	if !ok {
		t.Value, t.Valid = time.Time{}, false
		return nil
	}
	parsed, ok := parseTimestamp(text)
	if !ok {
		warn("Unparseable timestamp treated as null", "value", text)
		t.Value, t.Valid = time.Time{}, false
		return nil
	}
	t.Value, t.Valid = parsed, true
	return nil
}

func (t NilTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value.Format(time.RFC3339))
}

func (t NilTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Value
	return &v
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// List is a collection field that may arrive as null, a single object, or an
// array. Null normalizes to an empty list, a single object to a one-element
// list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return err
	}
	*l = List[T]{item}
	return nil
}
