package helpers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IntField reads a raw JSON value as an integer. Numbers and numeric strings are accepted
// as long as they are integral, so 5, 5.0 and "5" all yield 5.
func IntField(raw json.RawMessage) (int, bool) {
	v, ok := decodeScalar(raw)
	if !ok {
		return 0, false
	}
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// StringField reads a raw JSON value as text. Numbers are kept as written; null is the empty string.
func StringField(raw json.RawMessage) (string, bool) {
	if IsNull(raw) {
		return "", true
	}
	v, ok := decodeScalar(raw)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

// IsNull reports whether raw is absent or a JSON null.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeScalar(raw json.RawMessage) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}
