package timens

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stable codecs: wrappers whose wire form is frozen per version.
// The caller picks a version by picking a type; nothing inspects the
// data to guess. V1 is fixed-point decimal-seconds text, V2 is 8
// bytes of big-endian nanoseconds. The two reject each other's
// encodings with [ErrMalformedInput].

// SpanV1 freezes a span as V1 text: optional '-', integer seconds,
// '.', exactly nine fraction digits. For example, -90s is
// "-90.000000000".
type SpanV1 struct{ Span }

func (v SpanV1) MarshalText() ([]byte, error) {
	return appendFixSeconds(nil, int64(v.Span)), nil
}

func (v *SpanV1) UnmarshalText(text []byte) error {
	ns, err := parseFixSeconds(string(text))
	if err != nil {
		return err
	}
	v.Span = Span(ns)
	return nil
}

// TimeV1 freezes a time as V1 text: the span since epoch in the
// same layout as [SpanV1].
type TimeV1 struct{ Time }

func (v TimeV1) MarshalText() ([]byte, error) {
	return appendFixSeconds(nil, int64(v.Time)), nil
}

func (v *TimeV1) UnmarshalText(text []byte) error {
	ns, err := parseFixSeconds(string(text))
	if err != nil {
		return err
	}
	v.Time = Time(ns)
	return nil
}

// SpanV2 freezes a span as V2 binary: 8 bytes, big-endian
// two's-complement nanoseconds.
type SpanV2 struct{ Span }

func (v SpanV2) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, uint64(v.Span)), nil
}

func (v *SpanV2) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: stable v2 is 8 bytes, got %d", ErrMalformedInput, len(data))
	}
	v.Span = Span(binary.BigEndian.Uint64(data))
	return nil
}

// TimeV2 freezes a time as V2 binary, same layout as [SpanV2].
type TimeV2 struct{ Time }

func (v TimeV2) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, uint64(v.Time)), nil
}

func (v *TimeV2) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: stable v2 is 8 bytes, got %d", ErrMalformedInput, len(data))
	}
	v.Time = Time(binary.BigEndian.Uint64(data))
	return nil
}

// appendFixSeconds renders ns as fixed-point decimal seconds with
// exactly nine fraction digits.
func appendFixSeconds(b []byte, ns int64) []byte {
	u := uint64(ns)
	if ns < 0 {
		b = append(b, '-')
		u = -u
	}
	b = strconv.AppendUint(b, u/1e9, 10)
	b = append(b, '.')
	frac := strconv.FormatUint(u%1e9, 10)
	for range 9 - len(frac) {
		b = append(b, '0')
	}
	return append(b, frac...)
}

// parseFixSeconds is the strict inverse of appendFixSeconds: it
// accepts exactly the forms that function produces.
func parseFixSeconds(s string) (int64, error) {
	orig := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	sec, frac, ok := strings.Cut(s, ".")
	if !ok || sec == "" || len(frac) != 9 {
		return 0, fmt.Errorf("%w: %q is not fixed-point decimal seconds", ErrMalformedInput, orig)
	}
	secs, err := strconv.ParseUint(sec, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not fixed-point decimal seconds", ErrMalformedInput, orig)
	}
	fracNs, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not fixed-point decimal seconds", ErrMalformedInput, orig)
	}
	// Reject magnitudes beyond the representable nanosecond range
	// rather than decoding to a wrapped value.
	const maxNs = uint64(math.MaxInt64)
	if secs > maxNs/uint64(Second) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrMalformedInput, orig)
	}
	u := secs*uint64(Second) + fracNs
	if u > maxNs {
		return 0, fmt.Errorf("%w: %q is out of range", ErrMalformedInput, orig)
	}
	ns := int64(u)
	if neg {
		ns = -ns
	}
	return ns, nil
}
