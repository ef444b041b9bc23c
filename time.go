package timens

import (
	"fmt"
	"math"
	"time"
)

// Time is an absolute instant, stored as an int64 nanosecond count
// since [Epoch] (1970-01-01 00:00:00 UTC). The representable range
// runs from roughly 1823 to 2116 CE.
//
// Like [Span], arithmetic on Time wraps on overflow, and the
// ordinary comparison operators give the exact total order.
type Time int64

// Epoch is the fixed reference instant, 1970-01-01 00:00:00 UTC.
const Epoch Time = 0

// MaxTime and MinTime are the extremes of the legal range;
// math.MinInt64 is reserved as the [Option] sentinel.
const (
	MaxTime Time = math.MaxInt64
	MinTime Time = math.MinInt64 + 1
)

// Add returns t + d. Overflow wraps.
func (t Time) Add(d Span) Time {
	return t + Time(d)
}

// Sub returns t - d. Overflow wraps.
func (t Time) Sub(d Span) Time {
	return t - Time(d)
}

// Diff returns t - u as a span. Overflow wraps.
func (t Time) Diff(u Time) Span {
	return Span(t - u)
}

// AbsDiff returns the magnitude of t - u.
func (t Time) AbsDiff(u Time) Span {
	return t.Diff(u).Abs()
}

// Before reports whether t < u.
func (t Time) Before(u Time) bool {
	return t < u
}

// After reports whether t > u.
func (t Time) After(u Time) bool {
	return t > u
}

// Compare returns -1, 0 or 1 per the exact total order.
func (t Time) Compare(u Time) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	}
	return 0
}

// RobustlyEqual reports whether t and u are within [RobustEpsilon]
// of each other.
func (t Time) RobustlyEqual(u Time) bool {
	return t.Diff(u).Abs() < RobustEpsilon
}

// ToSpanSinceEpoch exposes the internal representation: the span
// from [Epoch] to t.
func (t Time) ToSpanSinceEpoch() Span {
	return Span(t)
}

// OfSpanSinceEpoch is the inverse of [Time.ToSpanSinceEpoch].
func OfSpanSinceEpoch(s Span) Time {
	return Time(s)
}

// Int64NsSinceEpoch returns the exact nanosecond count since epoch.
func (t Time) Int64NsSinceEpoch() int64 {
	return int64(t)
}

// OfInt64NsSinceEpoch is the inverse of [Time.Int64NsSinceEpoch].
func OfInt64NsSinceEpoch(ns int64) Time {
	return Time(ns)
}

// IntNsSinceEpoch returns the nanosecond count as a platform int,
// or [ErrPlatformRange] where int is narrower than 64 bits and the
// value does not fit. Prefer [Time.Int64NsSinceEpoch].
func (t Time) IntNsSinceEpoch() (int, error) {
	n := int64(t)
	if int64(int(n)) != n {
		return 0, fmt.Errorf("%w: %d ns since epoch does not fit in int", ErrPlatformRange, n)
	}
	return int(n), nil
}

// StdTime converts to a standard [time.Time], exactly, in UTC.
func (t Time) StdTime() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// OfStdTime converts from a standard [time.Time], exactly.
func OfStdTime(tt time.Time) Time {
	return Time(tt.UnixNano())
}

// OfUnixSeconds converts from the legacy float-seconds
// representation, rounding to the nearest microsecond. It is not
// injective: sub-microsecond detail is lost, but a value already
// rounded converts to itself.
//
// Magnitudes beyond the representable range, including the
// infinities, clamp to [MaxTime]/[MinTime]. NaN panics.
func OfUnixSeconds(sec float64) Time {
	if math.IsNaN(sec) {
		panic("timens: OfUnixSeconds of NaN")
	}
	us := math.Round(sec * 1e6)
	// Keep the float-to-int conversion in range; out-of-range
	// conversions are platform-dependent.
	const (
		maxUs = float64(math.MaxInt64 / int64(Microsecond))
		minUs = float64(math.MinInt64 / int64(Microsecond))
	)
	if us >= maxUs {
		return MaxTime
	}
	if us <= minUs {
		return MinTime
	}
	return Time(int64(us) * int64(Microsecond))
}

// UnixSeconds converts to the legacy float-seconds representation.
func (t Time) UnixSeconds() float64 {
	return float64(t) / float64(Second)
}

// NextMultiple returns the smallest base + k*interval, k an integer
// >= 0, strictly after `after`, or at/after it when canEqualAfter is
// true. Since k never goes negative, any `after` that precedes base
// resolves to base itself.
//
// Panics if interval is not positive.
func NextMultiple(base, after Time, interval Span, canEqualAfter bool) Time {
	if interval <= 0 {
		panic("timens: NextMultiple interval must be positive")
	}
	if after.Before(base) || (canEqualAfter && after == base) {
		return base
	}
	k := after.Diff(base).Div(interval)
	next := base.Add(interval.ScaleInt(k))
	// Truncated division leaves next within one interval of after,
	// on either side. One step forward restores the contract.
	if next.Before(after) || (!canEqualAfter && next == after) {
		next = next.Add(interval)
	}
	return next
}

// OccurrenceSide selects which side of a reference instant
// [Occurrence] searches.
type OccurrenceSide int

const (
	FirstAfterOrAt OccurrenceSide = iota
	LastBeforeOrAt
)

// Occurrence finds the instant nearest t, on the given side of it,
// whose civil clock time in loc is ofday (a duration since
// midnight). Calendar and timezone computation delegate to the
// standard library: [time.Date] in loc resolves DST transitions.
func Occurrence(side OccurrenceSide, t Time, ofday time.Duration, loc *time.Location) Time {
	civil := t.StdTime().In(loc)
	year, month, day := civil.Date()

	at := func(day int) Time {
		h := int(ofday / time.Hour)
		m := int(ofday % time.Hour / time.Minute)
		s := int(ofday % time.Minute / time.Second)
		ns := int(ofday % time.Second)
		return OfStdTime(time.Date(year, month, day, h, m, s, ns, loc))
	}

	candidate := at(day)
	switch side {
	case FirstAfterOrAt:
		for candidate.Before(t) {
			day++
			candidate = at(day)
		}
	case LastBeforeOrAt:
		for candidate.After(t) {
			day--
			candidate = at(day)
		}
	}
	return candidate
}
