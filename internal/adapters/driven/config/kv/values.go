// Package kv provides typed access to flattened configuration maps.
// Nested TOML tables are addressed with dot-notation keys.
package kv

import (
	"sort"
	"strings"
)

// Values is a flattened configuration map.
type Values map[string]any

// String returns the string at key, or "" when absent or not a string.
func (v Values) String(key string) string {
	if s, ok := v[key].(string); ok {
		return s
	}
	return ""
}

// Int returns the integer at key, or 0 when absent or not a number.
// TOML integers decode as int64.
func (v Values) Int(key string) int {
	switch n := v[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Bool returns the boolean at key, or false when absent.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Strings returns the string list at key.
// TOML arrays decode as []any; non-string items are skipped.
func (v Values) Strings(key string) []string {
	switch list := v[key].(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Flatten converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any, prefix string) Values {
	out := make(Values)
	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, val := range Flatten(nested, full) {
				out[k] = val
			}
			continue
		}
		out[full] = value
	}
	return out
}

// Nest is the inverse of Flatten, producing TOML tables.
// A key that is both a value and a table prefix keeps the table.
func Nest(v Values) map[string]any {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	// Longer keys first so tables win over scalar collisions.
	sort.Slice(keys, func(i, j int) bool {
		return strings.Count(keys[i], ".") > strings.Count(keys[j], ".")
	})

	root := make(map[string]any)
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, isTable := node[leaf].(map[string]any); isTable {
			continue
		}
		node[leaf] = v[key]
	}
	return root
}
