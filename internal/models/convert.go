package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cast"
)

// The converters below normalise a raw attribute value into one semantic
// type. Each has an E variant reporting malformed input; the plain variant
// returns the type's empty value instead: false, 0, 0, the zero time and
// a zero hour duration.

var errAbsent = errors.New("value absent")

// ToBoolean interprets raw as a boolean.
func ToBoolean(raw any) bool {
	v, _ := ToBooleanE(raw)
	return v
}

// ToBooleanE interprets raw as a boolean. Strings follow strconv.ParseBool,
// numbers are true when non-zero.
func ToBooleanE(raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, errAbsent
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	case float64:
		return v != 0, nil
	case float32:
		return v != 0, nil
	}
	return cast.ToBoolE(raw)
}

// ToFloat coerces raw to a float64.
func ToFloat(raw any) float64 {
	v, _ := ToFloatE(raw)
	return v
}

// ToFloatE coerces raw to a float64.
func ToFloatE(raw any) (float64, error) {
	if raw == nil {
		return 0, errAbsent
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	return cast.ToFloat64E(raw)
}

// ToInteger coerces raw to an int64. Fractional input is truncated.
func ToInteger(raw any) int64 {
	v, _ := ToIntegerE(raw)
	return v
}

// ToIntegerE coerces raw to an int64. Fractional input is truncated.
func ToIntegerE(raw any) (int64, error) {
	if raw == nil {
		return 0, errAbsent
	}

	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("unable to cast %q to int64", s)
		}
		return floatToInteger(f)
	}

	switch v := raw.(type) {
	case float64:
		return floatToInteger(v)
	case float32:
		return floatToInteger(float64(v))
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, fmt.Errorf("integer out of range: %d", v)
		}
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("integer out of range: %d", v)
		}
	}

	return cast.ToInt64E(raw)
}

// floatToInteger truncates f, rejecting values int64 cannot hold.
func floatToInteger(f float64) (int64, error) {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("integer out of range: %g", f)
	}
	return int64(f), nil
}

// ToDate coerces raw to a time. Strings without a zone are read in loc.
func ToDate(raw any, loc *time.Location) time.Time {
	v, _ := ToDateE(raw, loc)
	return v
}

// ToDateE coerces raw to a time. Strings without a zone are read in loc.
func ToDateE(raw any, loc *time.Location) (time.Time, error) {
	if raw == nil {
		return time.Time{}, errAbsent
	}
	if loc == nil {
		loc = time.UTC
	}

	switch v := raw.(type) {
	case time.Time:
		return v.In(loc), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, errAbsent
		}
		return cast.ToTimeInDefaultLocationE(s, loc)
	default:
		t, err := cast.ToTimeInDefaultLocationE(raw, loc)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(loc), nil
	}
}

// ToDuration coerces raw to a Duration. Numbers are seconds, as written by
// the exporter, and come back in hours. Strings use MPX notation ("8h");
// objects carry explicit "value" and "units".
func ToDuration(raw any) Duration {
	v, err := ToDurationE(raw)
	if err != nil {
		return Duration{Units: Hours}
	}
	return v
}

// ToDurationE coerces raw to a Duration.
func ToDurationE(raw any) (Duration, error) {
	switch v := raw.(type) {
	case nil:
		return Duration{Units: Hours}, errAbsent
	case Duration:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if seconds, err := strconv.ParseFloat(s, 64); err == nil {
			return fromSeconds(seconds), nil
		}
		return ParseDuration(s)
	case map[string]any:
		value, err := ToFloatE(v["value"])
		if err != nil {
			return Duration{Units: Hours}, fmt.Errorf("invalid duration value: %w", err)
		}
		units, err := ParseTimeUnit(cast.ToString(v["units"]))
		if err != nil {
			return Duration{Units: Hours}, err
		}
		return Duration{Value: value, Units: units}, nil
	default:
		seconds, err := cast.ToFloat64E(raw)
		if err != nil {
			return Duration{Units: Hours}, err
		}
		return fromSeconds(seconds), nil
	}
}

func fromSeconds(seconds float64) Duration {
	return Duration{Value: seconds / 3600, Units: Hours}
}

// ToGUID parses raw as a GUID; braces are accepted.
func ToGUID(raw any) uuid.UUID {
	v, _ := ToGUIDE(raw)
	return v
}

// ToGUIDE parses raw as a GUID.
func ToGUIDE(raw any) (uuid.UUID, error) {
	if raw == nil {
		return uuid.Nil, errAbsent
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(strings.TrimSpace(s))
}

// Empty returns the value a getter of type ft yields for an absent field.
// Dates and text come back as nil.
func Empty(ft schema.FieldType) any {
	switch ft {
	case schema.TypeBoolean:
		return false
	case schema.TypeFloat:
		return float64(0)
	case schema.TypeInteger:
		return int64(0)
	case schema.TypeDuration:
		return Duration{Units: Hours}
	default:
		return nil
	}
}

// Convert applies the converter selected by ft to raw. Text fields return
// raw unchanged and dates that cannot be read come back as nil.
func Convert(ft schema.FieldType, raw any, loc *time.Location) any {
	v, err := ConvertE(ft, raw, loc)
	if err != nil {
		return Empty(ft)
	}
	return v
}

// ConvertE applies the converter selected by ft to raw, reporting absent
// or malformed input.
func ConvertE(ft schema.FieldType, raw any, loc *time.Location) (any, error) {
	if raw == nil {
		return Empty(ft), errAbsent
	}

	switch ft {
	case schema.TypeBoolean:
		return ToBooleanE(raw)
	case schema.TypeFloat:
		return ToFloatE(raw)
	case schema.TypeInteger:
		return ToIntegerE(raw)
	case schema.TypeDate:
		t, err := ToDateE(raw, loc)
		if err != nil {
			return nil, err
		}
		return t, nil
	case schema.TypeDuration:
		return ToDurationE(raw)
	default:
		return raw, nil
	}
}
