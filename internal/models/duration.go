package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeUnit is the unit a Duration magnitude is expressed in. The values
// follow the MPX notation ("8h", "3ed").
type TimeUnit string

const (
	Minutes        TimeUnit = "m"
	Hours          TimeUnit = "h"
	Days           TimeUnit = "d"
	Weeks          TimeUnit = "w"
	Months         TimeUnit = "mo"
	Years          TimeUnit = "y"
	Percent        TimeUnit = "%"
	ElapsedMinutes TimeUnit = "em"
	ElapsedHours   TimeUnit = "eh"
	ElapsedDays    TimeUnit = "ed"
	ElapsedWeeks   TimeUnit = "ew"
	ElapsedMonths  TimeUnit = "emo"
	ElapsedYears   TimeUnit = "ey"
	ElapsedPercent TimeUnit = "e%"
)

var timeUnitNames = map[string]TimeUnit{
	"minutes":         Minutes,
	"hours":           Hours,
	"days":            Days,
	"weeks":           Weeks,
	"months":          Months,
	"years":           Years,
	"percent":         Percent,
	"elapsed_minutes": ElapsedMinutes,
	"elapsed_hours":   ElapsedHours,
	"elapsed_days":    ElapsedDays,
	"elapsed_weeks":   ElapsedWeeks,
	"elapsed_months":  ElapsedMonths,
	"elapsed_years":   ElapsedYears,
	"elapsed_percent": ElapsedPercent,
}

// IsValid checks if the time unit is valid
func (u TimeUnit) IsValid() bool {
	switch u {
	case Minutes, Hours, Days, Weeks, Months, Years, Percent,
		ElapsedMinutes, ElapsedHours, ElapsedDays, ElapsedWeeks, ElapsedMonths, ElapsedYears, ElapsedPercent:
		return true
	default:
		return false
	}
}

// String returns the string representation of TimeUnit
func (u TimeUnit) String() string {
	return string(u)
}

// IsElapsed reports whether the unit measures calendar time rather than
// working time.
func (u TimeUnit) IsElapsed() bool {
	return strings.HasPrefix(string(u), "e")
}

// ParseTimeUnit parses either the short notation ("h", "ed") or the long
// upstream names ("HOURS", "elapsed_days").
func ParseTimeUnit(s string) (TimeUnit, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	u := TimeUnit(normalized)
	if u.IsValid() {
		return u, nil
	}

	if named, ok := timeUnitNames[strings.ReplaceAll(normalized, " ", "_")]; ok {
		return named, nil
	}

	return "", fmt.Errorf("invalid time unit: %s", s)
}

// TimeUnitDefaults carries the project settings used to convert between
// working time units.
type TimeUnitDefaults struct {
	MinutesPerDay  float64
	MinutesPerWeek float64
	DaysPerMonth   float64
}

// DefaultTimeUnitDefaults matches a standard 8 hour day, 40 hour week and
// 20 working days per month.
var DefaultTimeUnitDefaults = TimeUnitDefaults{
	MinutesPerDay:  480,
	MinutesPerWeek: 2400,
	DaysPerMonth:   20,
}

func (d TimeUnitDefaults) minutesPer(u TimeUnit) (float64, bool) {
	switch u {
	case Minutes, ElapsedMinutes:
		return 1, true
	case Hours, ElapsedHours:
		return 60, true
	case Days:
		return d.MinutesPerDay, true
	case Weeks:
		return d.MinutesPerWeek, true
	case Months:
		return d.MinutesPerDay * d.DaysPerMonth, true
	case Years:
		return d.MinutesPerWeek * 52, true
	case ElapsedDays:
		return 24 * 60, true
	case ElapsedWeeks:
		return 7 * 24 * 60, true
	case ElapsedMonths:
		return 30 * 24 * 60, true
	case ElapsedYears:
		return 365 * 24 * 60, true
	default:
		return 0, false
	}
}

// Duration is a magnitude paired with the unit it is expressed in.
type Duration struct {
	Value float64  `json:"value"`
	Units TimeUnit `json:"units"`
}

// NewDuration creates a Duration
func NewDuration(value float64, units TimeUnit) Duration {
	return Duration{Value: value, Units: units}
}

// IsZero reports whether the duration has no magnitude.
func (d Duration) IsZero() bool {
	return d.Value == 0
}

// String formats the duration in MPX notation, e.g. "8h" or "2.5ed".
func (d Duration) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + string(d.Units)
}

// ConvertUnits expresses the duration in another unit. Percent durations
// and conversions with a zero project setting are returned unchanged.
func (d Duration) ConvertUnits(target TimeUnit, defaults TimeUnitDefaults) Duration {
	if d.Units == target {
		return d
	}

	from, ok := defaults.minutesPer(d.Units)
	if !ok || from == 0 {
		return d
	}
	to, ok := defaults.minutesPer(target)
	if !ok || to == 0 {
		return d
	}

	return Duration{Value: d.Value * from / to, Units: target}
}

var durationRegex = regexp.MustCompile(`^(-?\d*\.?\d+)\s*([A-Za-z%_ ]+)$`)

// ParseDuration parses MPX notation such as "8h", "2.5 d" or "3ed".
func ParseDuration(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	m := durationRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return Duration{}, fmt.Errorf("invalid duration: %q", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration magnitude: %q", m[1])
	}

	units, err := ParseTimeUnit(m[2])
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	return Duration{Value: value, Units: units}, nil
}
