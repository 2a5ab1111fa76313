package progress

import (
	"math"
	"strconv"
	"strings"
)

// The persisted blob is untyped and possibly tampered with, so every
// field goes through one of these small coercers. Policy: counters clamp
// to non-negative integers, flags follow truthiness, anything else falls
// back to its zero value.

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceCount parses a non-negative integer counter. Non-finite,
// fractional or negative input maps to 0.
func coerceCount(v any) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		i := int(n)
		if i < 0 {
			return 0
		}
		return i
	case int:
		if n < 0 {
			return 0
		}
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i >= 0 {
			return i
		}
	}
	return 0
}

// coerceIndex parses an option index; anything malformed maps to 0.
func coerceIndex(v any) int {
	return coerceCount(v)
}

// coerceMillis parses a unix-millisecond timestamp; 0 means "none".
func coerceMillis(v any) int64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return 0
		}
		return int64(n)
	case int64:
		if n < 0 {
			return 0
		}
		return n
	case int:
		if n < 0 {
			return 0
		}
		return int64(n)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil && i >= 0 {
			return i
		}
	}
	return 0
}

// truthy mirrors loose-boolean coercion: false, 0, NaN, "" and nil are
// false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// coerceLastResult restricts the persisted value to the two valid
// literals; anything else means "never answered".
func coerceLastResult(v any) string {
	switch coerceString(v) {
	case "correct":
		return "correct"
	case "wrong":
		return "wrong"
	default:
		return ""
	}
}
