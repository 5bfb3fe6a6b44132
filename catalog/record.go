package catalog

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Kind says what a catalog holds.
type Kind string

// The kinds of catalog served upstream.
const (
	Pokemon Kind = "pokemon"
	Move    Kind = "move"
)

// Placeholder is displayed for absent fields.
const Placeholder = "-"

// Record is a single pokemon or move, as decoded from upstream.
type Record map[string]interface{}

// Name returns the display name of the record.
func (r Record) Name() (string, bool) {
	return r.String("name")
}

// Num returns the display number (pokedex number) of the record.
func (r Record) Num() (int, bool) {
	f, ok := toFloat(r["num"])
	if !ok {
		return 0, false
	}
	return int(f), true
}

// String returns the string value at key.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Number returns the numeric value at key.
func (r Record) Number(key string) (float64, bool) {
	return toFloat(r[key])
}

// Strings returns the list of strings at key, skipping anything that
// isn't a string.
func (r Record) Strings(key string) []string {
	var result []string
	switch v := r[key].(type) {
	case []string:
		result = append(result, v...)
	case []interface{}:
		for _, e := range v {
			if s, ok := e.(string); ok {
				result = append(result, s)
			}
		}
	}
	return result
}

// Types returns the elemental types of the record.
func (r Record) Types() []string {
	return r.Strings("types")
}

// Display renders the value at key for display, or Placeholder when
// absent. Numbers are rendered without a fractional part when they
// have none.
func (r Record) Display(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return Placeholder
	}
	if f, ok := toFloat(v); ok {
		return formatNumber(f)
	}
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return Placeholder
}

// Object returns the nested object at key, with its keys sorted.
func (r Record) Object(key string) (map[string]interface{}, []string) {
	var obj map[string]interface{}
	switch v := r[key].(type) {
	case map[string]interface{}:
		obj = v
	case Record:
		obj = v
	default:
		return nil, nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return obj, keys
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
