package intl

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// toFloat reads v as a number. Strings are parsed the way a numeric key
// would be.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
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
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// ToFloat reads v as a number, reporting false for non numeric values.
func ToFloat(v any) (float64, bool) {
	return toFloat(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Display renders v the way it appears inside a message template.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return formatFloat(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}

// dispatchKey renders v as an option key: numbers in canonical form,
// everything else through Display.
func dispatchKey(v any) string {
	if _, isString := v.(string); !isString {
		if f, ok := toFloat(v); ok {
			return formatFloat(f)
		}
	}
	return Display(v)
}

// Arg returns args[i] or nil when the call passed fewer arguments.
func Arg(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// Offset returns v - n for numeric v. Non numeric values are NaN.
func Offset(v any, n float64) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return f - n
}

// Scale returns v / n for numeric v. Non numeric values are NaN.
func Scale(v any, n float64) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return f / n
}

// toTime reads v as a point in time: time.Time values, epoch milliseconds or
// RFC 3339 / date-only strings.
func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, ErrInvalidDate
		}
		return *t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, t)
	}
	if ms, ok := toFloat(v); ok && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		return time.UnixMilli(int64(ms)).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %T", ErrInvalidDate, v)
}
