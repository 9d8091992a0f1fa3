package pipeline

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidValue is returned when a constant or parameter has an unusable type.
var ErrInvalidValue = errors.New("invalid value")

// StringValue returns values[key] as a string, or def if the key is missing. Scalars are formatted.
func StringValue(values map[string]any, key, def string) (string, error) {
	raw, ok := values[key]
	if !ok || raw == nil {
		return def, nil
	}

	switch val := raw.(type) {
	case string:
		return val, nil
	case int, int64, float64, bool:
		return fmt.Sprint(val), nil
	default:
		return "", errors.Wrapf(ErrInvalidValue, "%s: unexpected type %T", key, raw)
	}
}

// IntValue returns values[key] as an int, or def if the key is missing. Strings are parsed.
func IntValue(values map[string]any, key string, def int) (int, error) {
	raw, ok := values[key]
	if !ok || raw == nil {
		return def, nil
	}

	switch val := raw.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, errors.Wrapf(ErrInvalidValue, "%s: %v is not an integer", key, val)
		}

		return int(val), nil
	case string:
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidValue, "%s: %v", key, err)
		}

		return parsed, nil
	default:
		return 0, errors.Wrapf(ErrInvalidValue, "%s: unexpected type %T", key, raw)
	}
}
