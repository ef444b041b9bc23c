package timens

// Sign is the direction of a span: Neg, Zero or Pos.
type Sign int8

const (
	Neg  Sign = -1
	Zero Sign = 0
	Pos  Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Neg:
		return "Neg"
	case Pos:
		return "Pos"
	}
	return "Zero"
}

// SignOf returns the sign of t.
func SignOf(t Span) Sign {
	switch {
	case t < 0:
		return Neg
	case t > 0:
		return Pos
	}
	return Zero
}

// Parts is the decomposition of a span into human units. All
// magnitude fields are non-negative; Sign carries the overall
// direction. Hr absorbs whole days.
type Parts struct {
	Sign Sign
	Hr   int64
	Min  int64
	Sec  int64
	Ms   int64
	Us   int64
	Ns   int64
}

// Components are the inputs to [Create]. The zero value of every
// field is its default; a Sign of Zero (the zero value) composes a
// non-negative span, same as Pos.
type Components struct {
	Sign Sign
	Day  int64
	Hr   int64
	Min  int64
	Sec  int64
	Ms   int64
	Us   int64
	Ns   int64
}

// Create composes a span from components:
//
//	sign * ((day*86400 + hr*3600 + min*60 + sec) seconds + ms + us + ns)
//
// Overflow during composition wraps silently, consistent with
// [Span.Add]. The sign applies to the whole sum, so Create is the
// inverse of [Span.Parts].
func Create(c Components) Span {
	sec := c.Day*86400 + c.Hr*3600 + c.Min*60 + c.Sec
	ns := sec*int64(Second) + c.Ms*int64(Millisecond) + c.Us*int64(Microsecond) + c.Ns
	if c.Sign == Neg {
		ns = -ns
	}
	return Span(ns)
}

// Parts decomposes t into whole hours, minutes, seconds,
// milliseconds, microseconds and nanoseconds, each remainder taken
// modulo the next-larger unit. Reconstructing via [Parts.Span]
// yields t again for any t in [MinSpan, MaxSpan].
func (t Span) Parts() Parts {
	p := Parts{Sign: SignOf(t)}
	rem := int64(t)
	if rem < 0 {
		rem = -rem
	}
	p.Hr = rem / int64(Hour)
	rem %= int64(Hour)
	p.Min = rem / int64(Minute)
	rem %= int64(Minute)
	p.Sec = rem / int64(Second)
	rem %= int64(Second)
	p.Ms = rem / int64(Millisecond)
	rem %= int64(Millisecond)
	p.Us = rem / int64(Microsecond)
	p.Ns = rem % int64(Microsecond)
	return p
}

// Span reconstructs the span the parts were decomposed from.
func (p Parts) Span() Span {
	return Create(Components{
		Sign: p.Sign,
		Hr:   p.Hr,
		Min:  p.Min,
		Sec:  p.Sec,
		Ms:   p.Ms,
		Us:   p.Us,
		Ns:   p.Ns,
	})
}
