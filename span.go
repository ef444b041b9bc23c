// Package timens provides a nanosecond-precision time and duration,
// expressed as int64 nanosecond counts. Intended as a faster,
// integer-backed alternative to float-seconds or struct-based time
// representations.
//
// Arithmetic wraps on overflow, the way int64 arithmetic does. There
// is no checked or saturating variant; callers who need overflow
// detection should pre-check ranges themselves.
package timens

import (
	"fmt"
	"math"
	"time"
)

// Span is a signed duration with nanosecond resolution,
// stored as an int64 nanosecond count (8 bytes).
//
// The ordinary comparison operators (<, ==, >) give the exact total
// order on spans. See [Span.RobustlyEqual] for tolerant comparison.
type Span int64

// Common unit spans. Day is exactly 24 hours and carries no
// calendar meaning.
const (
	Nanosecond  Span = 1
	Microsecond      = 1000 * Nanosecond
	Millisecond      = 1000 * Microsecond
	Second           = 1000 * Millisecond
	Minute           = 60 * Second
	Hour             = 60 * Minute
	Day              = 24 * Hour
)

// MaxSpan and MinSpan are the extremes of the legal range.
// math.MinInt64 itself is reserved as the [Option] sentinel and is
// not a constructible span.
const (
	MaxSpan Span = math.MaxInt64
	MinSpan Span = math.MinInt64 + 1
)

// RobustEpsilon is the tolerance used by the robust comparisons:
// spans closer together than this compare as equal.
const RobustEpsilon = Millisecond

// OfNs returns the span closest to ns nanoseconds.
func OfNs(ns float64) Span {
	return Span(ns)
}

// OfUs returns the span closest to us microseconds.
func OfUs(us float64) Span {
	return Span(us * float64(Microsecond))
}

// OfMs returns the span closest to ms milliseconds.
func OfMs(ms float64) Span {
	return Span(ms * float64(Millisecond))
}

// OfSec returns the span closest to sec seconds.
func OfSec(sec float64) Span {
	return Span(sec * float64(Second))
}

// OfMin returns the span closest to min minutes.
func OfMin(min float64) Span {
	return Span(min * float64(Minute))
}

// OfHr returns the span closest to hr hours.
func OfHr(hr float64) Span {
	return Span(hr * float64(Hour))
}

// OfDay returns the span closest to day 24-hour days.
func OfDay(day float64) Span {
	return Span(day * float64(Day))
}

// OfInt64Ns returns the span of exactly ns nanoseconds.
// Inverse of [Span.Int64Ns].
func OfInt64Ns(ns int64) Span {
	return Span(ns)
}

// OfStdDuration converts a standard [time.Duration], exactly.
func OfStdDuration(d time.Duration) Span {
	return Span(d.Nanoseconds())
}

func (t Span) ToNs() float64  { return float64(t) }
func (t Span) ToUs() float64  { return float64(t) / float64(Microsecond) }
func (t Span) ToMs() float64  { return float64(t) / float64(Millisecond) }
func (t Span) ToSec() float64 { return float64(t) / float64(Second) }
func (t Span) ToMin() float64 { return float64(t) / float64(Minute) }
func (t Span) ToHr() float64  { return float64(t) / float64(Hour) }
func (t Span) ToDay() float64 { return float64(t) / float64(Day) }

// Int64Ns returns the span as an exact int64 nanosecond count.
func (t Span) Int64Ns() int64 {
	return int64(t)
}

// IntNs returns the span as a platform int nanosecond count. On
// platforms whose int is narrower than 64 bits it returns
// [ErrPlatformRange] when the value does not fit; prefer
// [Span.Int64Ns] to avoid that class of error entirely.
func (t Span) IntNs() (int, error) {
	n := int64(t)
	if int64(int(n)) != n {
		return 0, fmt.Errorf("%w: %d ns does not fit in int", ErrPlatformRange, n)
	}
	return int(n), nil
}

// StdDuration converts to a standard [time.Duration], exactly.
func (t Span) StdDuration() time.Duration {
	return time.Duration(t)
}

// Add returns t + u. Overflow wraps.
func (t Span) Add(u Span) Span {
	return t + u
}

// Sub returns t - u. Overflow wraps.
func (t Span) Sub(u Span) Span {
	return t - u
}

// Neg returns -t.
func (t Span) Neg() Span {
	return -t
}

// Abs returns the magnitude of t.
func (t Span) Abs() Span {
	if t < 0 {
		return -t
	}
	return t
}

// ScaleInt returns t * factor. Overflow wraps.
func (t Span) ScaleInt(factor int64) Span {
	return t * Span(factor)
}

// Scale returns t scaled by factor, computed through float64.
// Precision loss at very large magnitudes is expected.
func (t Span) Scale(factor float64) Span {
	return Span(float64(t) * factor)
}

// DivFloat returns t divided by f, computed through float64.
func (t Span) DivFloat(f float64) Span {
	return Span(float64(t) / f)
}

// Div returns the truncated integer quotient of the two
// nanosecond counts.
func (t Span) Div(u Span) int64 {
	return int64(t) / int64(u)
}

// Ratio returns t / u as a float, satisfying
// t.ToSec()/u.ToSec() == t.Ratio(u) up to floating-point rounding.
func (t Span) Ratio(u Span) float64 {
	return float64(t) / float64(u)
}

// Before reports whether t < u.
func (t Span) Before(u Span) bool {
	return t < u
}

// After reports whether t > u.
func (t Span) After(u Span) bool {
	return t > u
}

// Compare returns -1, 0 or 1 per the exact total order.
func (t Span) Compare(u Span) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	}
	return 0
}

// RobustlyEqual reports whether t and u differ by less than
// [RobustEpsilon].
func (t Span) RobustlyEqual(u Span) bool {
	return t.Sub(u).Abs() < RobustEpsilon
}

// RobustlyCompare is like [Span.Compare] but treats spans within
// [RobustEpsilon] of each other as equal.
func (t Span) RobustlyCompare(u Span) int {
	if t.RobustlyEqual(u) {
		return 0
	}
	return t.Compare(u)
}

// String implements [fmt.Stringer] via [Span.ShortString].
func (t Span) String() string {
	return t.ShortString()
}
