package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule checks the value found at path. present reports whether the key
// existed in the document at all. A non-nil error is recorded as a violation
// of path with err.Error() as the message.
//
// All rules except Required treat an absent or null value as valid, so
// fields are optional unless Required is part of their rule set.
type Rule func(path string, value any, present bool) error

// optional wraps check so that it only runs for present, non-null values.
func optional(check func(path string, value any) error) Rule {
	return func(path string, value any, present bool) error {
		if !present || value == nil {
			return nil
		}
		return check(path, value)
	}
}

// Required rejects absent and null values.
func Required() Rule {
	return func(path string, value any, present bool) error {
		if !present || value == nil {
			return fmt.Errorf("%s is a required field", path)
		}
		return nil
	}
}

// String requires a string value.
func String() Rule {
	return optional(func(path string, value any) error {
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s must be a `string` type", path)
		}
		return nil
	})
}

// Boolean requires a boolean value.
func Boolean() Rule {
	return optional(func(path string, value any) error {
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s must be a `boolean` type", path)
		}
		return nil
	})
}

// Number requires a numeric value. Strings holding digits are rejected; use
// Numeric for query parameters.
func Number() Rule {
	return optional(func(path string, value any) error {
		if _, ok := toFloat(value); !ok {
			return fmt.Errorf("%s must be a `number` type", path)
		}
		return nil
	})
}

// Integer requires a numeric value without a fractional part.
func Integer() Rule {
	return optional(func(path string, value any) error {
		f, ok := toFloat(value)
		if !ok || f != math.Trunc(f) {
			return fmt.Errorf("%s must be an integer", path)
		}
		return nil
	})
}

// Numeric requires a string holding a base-10 number. It is the query-string
// counterpart of Number.
func Numeric() Rule {
	return optional(func(path string, value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a numeric string", path)
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("%s must be a numeric string", path)
		}
		return nil
	})
}

// MinLength requires a string of at least n characters or an array of at
// least n elements.
func MinLength(n int) Rule {
	return optional(func(path string, value any) error {
		if l, ok := length(value); ok && l < n {
			if _, isString := value.(string); isString {
				return fmt.Errorf("%s must be at least %d characters", path, n)
			}
			return fmt.Errorf("%s field must have at least %d items", path, n)
		}
		return nil
	})
}

// MaxLength requires a string of at most n characters or an array of at
// most n elements.
func MaxLength(n int) Rule {
	return optional(func(path string, value any) error {
		if l, ok := length(value); ok && l > n {
			if _, isString := value.(string); isString {
				return fmt.Errorf("%s must be at most %d characters", path, n)
			}
			return fmt.Errorf("%s field must have less than or equal to %d items", path, n)
		}
		return nil
	})
}

// Min requires a number greater than or equal to lower.
func Min(lower float64) Rule {
	return optional(func(path string, value any) error {
		if f, ok := toFloat(value); ok && f < lower {
			return fmt.Errorf("%s must be greater than or equal to %v", path, lower)
		}
		return nil
	})
}

// Max requires a number less than or equal to upper.
func Max(upper float64) Rule {
	return optional(func(path string, value any) error {
		if f, ok := toFloat(value); ok && f > upper {
			return fmt.Errorf("%s must be less than or equal to %v", path, upper)
		}
		return nil
	})
}

// OneOf requires a string equal to one of allowed.
func OneOf(allowed ...string) Rule {
	return optional(func(path string, value any) error {
		s, ok := value.(string)
		if !ok || !slices.Contains(allowed, s) {
			return fmt.Errorf("%s must be one of the following values: %s", path, strings.Join(allowed, ", "))
		}
		return nil
	})
}

// Pattern requires a string matching expr. It panics if expr does not
// compile, like regexp.MustCompile.
func Pattern(expr string) Rule {
	re := regexp.MustCompile(expr)
	return optional(func(path string, value any) error {
		s, ok := value.(string)
		if !ok || !re.MatchString(s) {
			return fmt.Errorf("%s must match the following: %q", path, expr)
		}
		return nil
	})
}

// Array requires an array value.
func Array() Rule {
	return optional(func(path string, value any) error {
		if _, ok := value.([]any); !ok {
			return fmt.Errorf("%s must be a `array` type", path)
		}
		return nil
	})
}

// Each applies rules to every element of an array value. Elements are
// reported with their index, e.g. "tags[2] must be a `string` type"; the
// first failing rule of each element is reported. Non-array values are
// ignored, combine with Array to reject them.
func Each(rules ...Rule) Rule {
	return optional(func(path string, value any) error {
		items, ok := value.([]any)
		if !ok {
			return nil
		}

		var messages []string
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			for _, rule := range rules {
				if err := rule(itemPath, item, true); err != nil {
					messages = append(messages, err.Error())
					break
				}
			}
		}
		if len(messages) > 0 {
			return errors.New(strings.Join(messages, ", "))
		}
		return nil
	})
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func length(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v), true
	case []any:
		return len(v), true
	default:
		return 0, false
	}
}
