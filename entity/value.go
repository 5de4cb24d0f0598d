package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Kind names the shape of a json-like value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "null"
}

// Value wraps a json-like value as decoded by encoding/json
// (nil, bool, float64, json.Number, string, []any, map[string]any).
type Value struct {
	Raw any
}

// Kind classifies the wrapped value.
func (v Value) Kind() Kind {
	switch v.Raw.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case float64, float32, int, int64, json.Number:
		return Number
	case string:
		return String
	case []any:
		return Array
	case map[string]any, Record:
		return Object
	}
	return Null
}

// Field returns the named member of an object value.
// Anything other than an object holding the name is absent.
func (v Value) Field(name string) (Value, bool) {

	var obj map[string]any
	switch raw := v.Raw.(type) {
	case map[string]any:
		obj = raw
	case Record:
		obj = raw
	default:
		return Value{}, false
	}

	child, ok := obj[name]
	if !ok || child == nil {
		return Value{}, false
	}
	return Value{Raw: child}, true
}

// Index returns the i'th element of an array value.
func (v Value) Index(i int) (Value, bool) {

	arr, ok := v.Raw.([]any)
	if !ok || i < 0 || i >= len(arr) || arr[i] == nil {
		return Value{}, false
	}
	return Value{Raw: arr[i]}, true
}

// Path walks a dot-separated path one segment at a time.
// Numeric segments index into arrays; any miss makes the whole lookup absent.
func (v Value) Path(path string) (Value, bool) {

	cur := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := cur.Field(seg)
		if !ok && cur.Kind() == Array {
			idx, err := strconv.Atoi(seg)
			if err == nil {
				next, ok = cur.Index(idx)
			}
		}
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// String returns the value as a string.
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	case map[string]any, []any, Record:
		data, err := json.Marshal(raw)
		if err != nil {
			return fmt.Sprintf("%v", raw)
		}
		return string(data)
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	case int:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	case json.Number:
		f, err := raw.Float64()
		return f, errors.Wrapf(err, "value is not a number: %q", raw)
	case string:
		f, err := strconv.ParseFloat(raw, 64)
		return f, errors.Wrapf(err, "value is not a number: %q", raw)
	}
	return 0, errors.Errorf("value is not a number: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time, parsing RFC3339 and plain dates.
func (v Value) Time() (time.Time, error) {
	switch raw := v.Raw.(type) {
	case time.Time:
		return raw, nil
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", DateFormat} {
			t, err := time.Parse(layout, raw)
			if err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.Errorf("value is not a time: %q", raw)
	}
	return time.Time{}, errors.Errorf("value is not a time: %T", v.Raw)
}
