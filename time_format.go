package timens

import (
	"fmt"
	"time"
)

// Layouts for the absolute string forms. The filename form avoids
// ':' and space, which are unsafe or awkward in file names.
const (
	absLayout      = "2006-01-02 15:04:05.999999999Z07:00"
	filenameLayout = "2006-01-02_15-04-05.999999999"
	secLayout      = "2006-01-02 15:04:05"
)

// ToStringFixProto renders t as fixed-point decimal seconds since
// epoch. With a non-UTC zone the seconds are shifted by the zone's
// offset at t, tagging the string as local to that zone;
// [OfStringFixProto] with the same zone reverses the shift.
func (t Time) ToStringFixProto(loc *time.Location) string {
	ns := int64(t)
	if offset := zoneOffsetNs(t, loc); offset != 0 {
		ns += offset
	}
	return string(appendFixSeconds(nil, ns))
}

// OfStringFixProto parses the output of [Time.ToStringFixProto],
// interpreted in loc. Returns [ErrMalformedInput] on anything but
// a strict fixed-point decimal-seconds string.
func OfStringFixProto(s string, loc *time.Location) (Time, error) {
	ns, err := parseFixSeconds(s)
	if err != nil {
		return 0, err
	}
	t := Time(ns)
	// The offset depends on the instant being recovered; resolve at
	// the provisional instant, then refine once.
	t = Time(ns - zoneOffsetNs(t, loc))
	t = Time(ns - zoneOffsetNs(t, loc))
	return t, nil
}

func zoneOffsetNs(t Time, loc *time.Location) int64 {
	if loc == nil || loc == time.UTC {
		return 0
	}
	_, offset := t.StdTime().In(loc).Zone()
	return int64(offset) * int64(Second)
}

// ToStringAbs renders t as an absolute civil timestamp in loc, with
// zone offset, e.g. "2021-03-04 05:06:07.123456789+09:00".
func (t Time) ToStringAbs(loc *time.Location) string {
	return t.StdTime().In(loc).Format(absLayout)
}

// OfStringAbs parses the output of [Time.ToStringAbs]. loc resolves
// strings whose offset is ambiguous or absent.
func OfStringAbs(s string, loc *time.Location) (Time, error) {
	tt, err := time.ParseInLocation(absLayout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return OfStdTime(tt), nil
}

// ToFilenameString renders t as a filesystem-safe timestamp in loc,
// e.g. "2021-03-04_05-06-07.123456789".
func (t Time) ToFilenameString(loc *time.Location) string {
	return t.StdTime().In(loc).Format(filenameLayout)
}

// OfFilenameString parses the output of [Time.ToFilenameString],
// interpreted in loc.
func OfFilenameString(s string, loc *time.Location) (Time, error) {
	tt, err := time.ParseInLocation(filenameLayout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return OfStdTime(tt), nil
}

// ToSecString renders t in loc truncated to whole seconds,
// e.g. "2021-03-04 05:06:07".
func (t Time) ToSecString(loc *time.Location) string {
	return t.StdTime().In(loc).Format(secLayout)
}

// OfSecString parses the output of [Time.ToSecString],
// interpreted in loc.
func OfSecString(s string, loc *time.Location) (Time, error) {
	tt, err := time.ParseInLocation(secLayout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return OfStdTime(tt), nil
}

// String implements [fmt.Stringer] as the absolute UTC form.
func (t Time) String() string {
	return t.ToStringAbs(time.UTC)
}
