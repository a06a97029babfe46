package safe

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Int64 converts a decoded document number to int64. Floats must be integral and
// in range; strings are rejected so that quoted ids do not slip through.
func Int64(v any) (int64, error) {
	switch value := v.(type) {
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int64:
		return value, nil
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", value)
		}
		return int64(value), nil
	case uint32:
		return int64(value), nil
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", value)
		}
		return int64(value), nil
	case float64:
		return floatToInt64(value)
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(string(value), 64)
		if err != nil {
			return 0, fmt.Errorf("parse number %q: %w", value, err)
		}
		return floatToInt64(f)
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("value %v is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v out of int64 range", f)
	}
	return int64(f), nil
}
