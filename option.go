package timens

import "math"

// noneSentinel is the one bit pattern reserved to mean "absent".
// It sits just below MinSpan/MinTime, so no constructible Span or
// Time collides with it.
const noneSentinel = math.MinInt64

// Option packs "value or absent" into the same 8 bytes as the value
// itself, avoiding any boxing or extra flag word. One sentinel bit
// pattern (math.MinInt64) encodes absence; every other pattern is a
// present value, stored literally.
//
// Equality, ordering and hashing on an Option are those of the raw
// int64, so an absent value sorts and hashes as the sentinel,
// consistently.
type Option[T ~int64] int64

// SpanOption is an optional [Span] in 8 bytes.
type SpanOption = Option[Span]

// TimeOption is an optional [Time] in 8 bytes.
type TimeOption = Option[Time]

// Some returns an Option holding v.
//
// It panics if v is the reserved sentinel bit pattern. That is a
// design-time invariant, not a recoverable condition: the legal
// ranges of [Span] and [Time] exclude the sentinel.
func Some[T ~int64](v T) Option[T] {
	if int64(v) == noneSentinel {
		panic("timens: Some of the reserved sentinel value")
	}
	return Option[T](v)
}

// None returns the absent Option.
func None[T ~int64]() Option[T] {
	return Option[T](noneSentinel)
}

// OptionOf lifts a (value, present) pair, as returned by lookups and
// [Option.Value], back into an Option.
func OptionOf[T ~int64](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsNone reports whether o is absent.
func (o Option[T]) IsNone() bool {
	return int64(o) == noneSentinel
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return int64(o) != noneSentinel
}

// Value returns the held value and whether one is present.
func (o Option[T]) Value() (T, bool) {
	if o.IsNone() {
		var zero T
		return zero, false
	}
	return T(o), true
}

// MustValue returns the held value, panicking if absent.
func (o Option[T]) MustValue() T {
	if o.IsNone() {
		panic("timens: MustValue of an absent Option")
	}
	return T(o)
}

func (o Option[T]) String() string {
	v, ok := o.Value()
	if !ok {
		return "none"
	}
	if s, isStringer := any(v).(interface{ String() string }); isStringer {
		return s.String()
	}
	return "some"
}
