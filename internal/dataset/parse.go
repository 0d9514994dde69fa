package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseFloat parses a numeric cell leniently. Thousands separators and a
// trailing percent sign are tolerated. Returns nil for empty or
// malformed input.
func ParseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseInt parses an integer cell leniently, truncating fractions.
// Returns nil for empty or malformed input.
func ParseInt(s string) *int {
	f := ParseFloat(s)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// ParseDate parses a date cell in any common layout. Returns nil for
// empty or malformed input; callers treat nil as a tolerated gap, never
// a fatal error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}
