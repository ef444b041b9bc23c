package timens

import (
	"strconv"
	"strings"
)

// Unit is a display unit for span formatting.
type Unit int

const (
	UnitNanosecond Unit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
)

func (u Unit) span() Span {
	switch u {
	case UnitNanosecond:
		return Nanosecond
	case UnitMicrosecond:
		return Microsecond
	case UnitMillisecond:
		return Millisecond
	case UnitMinute:
		return Minute
	case UnitHour:
		return Hour
	case UnitDay:
		return Day
	}
	return Second
}

func (u Unit) suffix() string {
	switch u {
	case UnitNanosecond:
		return "ns"
	case UnitMicrosecond:
		return "us"
	case UnitMillisecond:
		return "ms"
	case UnitMinute:
		return "m"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	}
	return "s"
}

// autoUnit picks the largest unit with magnitude >= 1,
// seconds for zero.
func autoUnit(t Span) Unit {
	abs := t.Abs()
	switch {
	case t == 0:
		return UnitSecond
	case abs >= Day:
		return UnitDay
	case abs >= Hour:
		return UnitHour
	case abs >= Minute:
		return UnitMinute
	case abs >= Second:
		return UnitSecond
	case abs >= Millisecond:
		return UnitMillisecond
	case abs >= Microsecond:
		return UnitMicrosecond
	}
	return UnitNanosecond
}

type humConfig struct {
	delimiter    byte
	decimals     int
	alignDecimal bool
	unit         Unit
	unitSet      bool
}

// HumOption configures [Span.StringHum].
type HumOption func(*humConfig)

// WithDelimiter sets the digit-grouping delimiter, default '_'.
func WithDelimiter(d byte) HumOption {
	return func(c *humConfig) { c.delimiter = d }
}

// WithDecimals sets the number of fraction digits, default 3.
// Clamped to [0, 9].
func WithDecimals(n int) HumOption {
	return func(c *humConfig) { c.decimals = n }
}

// WithAlignDecimal pads the fraction with trailing zeros to the
// full decimal count, so columns of spans line up on the point.
func WithAlignDecimal(align bool) HumOption {
	return func(c *humConfig) { c.alignDecimal = align }
}

// WithUnit forces the display unit instead of auto-selecting.
func WithUnit(u Unit) HumOption {
	return func(c *humConfig) {
		c.unit = u
		c.unitSet = true
	}
}

// StringHum renders the span for humans: the integer part grouped in
// threes by the delimiter, a rounded fraction, and a unit suffix.
// Defaults: delimiter '_', 3 decimals, trailing zeros trimmed, unit
// auto-selected as the largest with magnitude >= 1.
//
//	Span(1234567890).StringHum() // "1.235s"
func (t Span) StringHum(opts ...HumOption) string {
	c := humConfig{delimiter: '_', decimals: 3}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.unitSet {
		c.unit = autoUnit(t)
	}
	if c.decimals < 0 {
		c.decimals = 0
	} else if c.decimals > 9 {
		c.decimals = 9
	}

	unit := int64(c.unit.span())
	mag := int64(t)
	neg := mag < 0
	if neg {
		mag = -mag
	}
	whole := mag / unit
	fracNs := mag % unit

	// Round the fraction through float64; it is < 1 so well within
	// float64 precision for <= 9 digits.
	frac := strconv.FormatFloat(float64(fracNs)/float64(unit), 'f', c.decimals, 64)
	if strings.HasPrefix(frac, "1") {
		// rounded up to the next whole unit
		whole++
		frac = strings.Replace(frac, "1", "0", 1)
	}
	// frac is "0" or "0.ddd..."
	frac = strings.TrimPrefix(frac, "0")
	if !c.alignDecimal {
		frac = strings.TrimRight(frac, "0")
		frac = strings.TrimSuffix(frac, ".")
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(strconv.FormatInt(whole, 10), c.delimiter))
	b.WriteString(frac)
	b.WriteString(c.unit.suffix())
	return b.String()
}

// groupDigits inserts delim every three digits, right to left.
func groupDigits(digits string, delim byte) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(delim)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ShortString is a compact single-unit rendering with up to four
// fraction digits and trailing zeros trimmed, e.g. "1.5ms", "-2.25h",
// "0s".
func (t Span) ShortString() string {
	unit := autoUnit(t)
	v := strconv.FormatFloat(float64(t)/float64(unit.span()), 'f', 4, 64)
	v = strings.TrimRight(v, "0")
	v = strings.TrimSuffix(v, ".")
	return v + unit.suffix()
}
