package participants

import (
	"math"
	"strings"
)

// CleanName trims surrounding whitespace and truncates to MaxNameLen runes.
// An empty result means the caller supplied no usable name.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = strings.TrimSpace(string(r[:MaxNameLen]))
	}
	return name
}

// normCount coerces a patched counter: non-finite input falls back to the
// given default, and the result is clamped to a minimum of zero. Finite
// values past the integer range pin to the range edge; converting them
// directly would overflow to the minimum integer.
func normCount(v float64, fallback int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = float64(fallback)
	}
	if v <= 0 {
		return 0
	}
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// normDuration is normCount for millisecond durations. The fallback is the
// record's existing value, so garbage input leaves the duration untouched.
func normDuration(v float64, fallback int64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = float64(fallback)
	}
	if v <= 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// normIndex keeps whatever ordinal the client reports; only non-finite input
// is coerced to zero. Out-of-range values pin to the nearest representable
// integer rather than overflowing.
func normIndex(v float64) int {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
