package timens

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTime_Epoch(t *testing.T) {
	t.Parallel()

	require.Equal(t, Epoch, OfSpanSinceEpoch(Span(0)))
	require.Equal(t, Span(0), Epoch.ToSpanSinceEpoch())
	require.Equal(t, int64(0), Epoch.StdTime().UnixNano())
	require.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), Epoch.StdTime())
}

func TestTime_Arithmetic(t *testing.T) {
	t.Parallel()

	t.Run("AddSubDiff", func(t *testing.T) {
		t.Parallel()
		t0 := Epoch.Add(OfSec(100))
		require.Equal(t, Epoch, t0.Sub(OfSec(100)))
		require.Equal(t, OfSec(100), t0.Diff(Epoch))
		require.Equal(t, OfSec(-100), Epoch.Diff(t0))
		require.Equal(t, OfSec(100), Epoch.AbsDiff(t0))
	})

	t.Run("DiffOfAddsIsSpanDifference", func(t *testing.T) {
		t.Parallel()
		spans := []Span{0, Nanosecond, -Nanosecond, OfSec(1.5), OfHr(-3), OfDay(365)}
		for _, a := range spans {
			for _, b := range spans {
				got := Epoch.Add(a).Diff(Epoch.Add(b))
				require.Equal(t, a.Sub(b), got)
			}
		}
	})

	t.Run("RoundTripThroughSpan", func(t *testing.T) {
		t.Parallel()
		t0 := Epoch.Add(OfDay(12345)).Add(Span(678))
		d := t0.Diff(Epoch)
		require.Equal(t, d, Epoch.Add(d).ToSpanSinceEpoch())
		require.Equal(t, t0, OfSpanSinceEpoch(t0.ToSpanSinceEpoch()))
	})

	t.Run("SilentWrap", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, Time(math.MinInt64), MaxTime.Add(Nanosecond))
	})

	t.Run("Compare", func(t *testing.T) {
		t.Parallel()
		t0 := Epoch.Add(OfSec(1))
		t1 := Epoch.Add(OfSec(2))
		require.True(t, t0.Before(t1))
		require.True(t, t1.After(t0))
		require.Equal(t, -1, t0.Compare(t1))
		require.Equal(t, 0, t0.Compare(t0))
		require.Equal(t, 1, t1.Compare(t0))
		require.True(t, t0.RobustlyEqual(t0.Add(OfUs(999))))
		require.False(t, t0.RobustlyEqual(t1))
	})
}

func TestTime_Int64Ns(t *testing.T) {
	t.Parallel()

	t0 := Epoch.Add(OfSec(1.5))
	require.Equal(t, int64(1500000000), t0.Int64NsSinceEpoch())
	require.Equal(t, t0, OfInt64NsSinceEpoch(t0.Int64NsSinceEpoch()))

	n, err := t0.IntNsSinceEpoch()
	if err != nil {
		require.ErrorIs(t, err, ErrPlatformRange)
	} else {
		require.Equal(t, 1500000000, n)
	}
}

func TestTime_StdTime(t *testing.T) {
	t.Parallel()

	tt := time.Date(2021, time.March, 4, 5, 6, 7, 123456789, time.UTC)
	t0 := OfStdTime(tt)
	require.Equal(t, tt, t0.StdTime())
	require.Equal(t, t0, OfStdTime(t0.StdTime()))
}

func TestTime_UnixSeconds(t *testing.T) {
	t.Parallel()

	t.Run("Exact", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, Epoch.Add(OfSec(1.5)), OfUnixSeconds(1.5))
		require.Equal(t, 1.5, OfUnixSeconds(1.5).UnixSeconds())
		require.Equal(t, Epoch.Sub(OfSec(2)), OfUnixSeconds(-2))
	})

	t.Run("RoundsToMicrosecond", func(t *testing.T) {
		t.Parallel()
		t0 := Time(1500000789) // sub-microsecond detail
		rounded := OfUnixSeconds(t0.UnixSeconds())
		require.NotEqual(t, t0, rounded)
		require.Equal(t, Time(1500001000), rounded)

		// idempotent once rounded
		require.Equal(t, rounded, OfUnixSeconds(rounded.UnixSeconds()))
	})

	t.Run("NonFinite", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, MaxTime, OfUnixSeconds(math.Inf(1)))
		require.Equal(t, MinTime, OfUnixSeconds(math.Inf(-1)))
		require.Equal(t, MaxTime, OfUnixSeconds(1e300))
		require.Equal(t, MinTime, OfUnixSeconds(-1e300))
		require.Panics(t, func() { OfUnixSeconds(math.NaN()) })
	})
}

func TestNextMultiple(t *testing.T) {
	t.Parallel()

	base := Epoch.Add(OfSec(100))
	interval := OfMin(5)

	t.Run("AfterEqualsBase", func(t *testing.T) {
		t.Parallel()
		// strictly after: the base itself does not qualify
		require.Equal(t, base.Add(interval), NextMultiple(base, base, interval, false))
		require.Equal(t, base, NextMultiple(base, base, interval, true))
	})

	t.Run("AfterWithinFirstInterval", func(t *testing.T) {
		t.Parallel()
		after := base.Add(Nanosecond)
		require.Equal(t, base.Add(interval), NextMultiple(base, after, interval, false))
		require.Equal(t, base.Add(interval), NextMultiple(base, after, interval, true))
	})

	t.Run("AfterOnLaterMultiple", func(t *testing.T) {
		t.Parallel()
		after := base.Add(interval.ScaleInt(2))
		require.Equal(t, base.Add(interval.ScaleInt(3)), NextMultiple(base, after, interval, false))
		require.Equal(t, after, NextMultiple(base, after, interval, true))
	})

	t.Run("AfterBeforeBase", func(t *testing.T) {
		t.Parallel()
		// k never goes negative: nothing before base is ever returned,
		// even when `after` sits several intervals earlier
		after := base.Sub(OfMin(7))
		require.Equal(t, base, NextMultiple(base, after, interval, false))
		require.Equal(t, base, NextMultiple(base, after, interval, true))

		after = base.Sub(Nanosecond)
		require.Equal(t, base, NextMultiple(base, after, interval, false))
	})

	t.Run("NonPositiveIntervalPanics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { NextMultiple(base, base, Span(0), false) })
		require.Panics(t, func() { NextMultiple(base, base, OfSec(-1), false) })
	})
}

func TestOccurrence(t *testing.T) {
	t.Parallel()

	tt := time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)
	t0 := OfStdTime(tt)

	t.Run("FirstAfterOrAt", func(t *testing.T) {
		t.Parallel()
		// later today
		got := Occurrence(FirstAfterOrAt, t0, 6*time.Hour, time.UTC)
		require.Equal(t, OfStdTime(time.Date(2021, time.March, 4, 6, 0, 0, 0, time.UTC)), got)

		// already passed today: tomorrow
		got = Occurrence(FirstAfterOrAt, t0, 5*time.Hour, time.UTC)
		require.Equal(t, OfStdTime(time.Date(2021, time.March, 5, 5, 0, 0, 0, time.UTC)), got)

		// exactly now counts as "at"
		ofday := 5*time.Hour + 6*time.Minute + 7*time.Second
		require.Equal(t, t0, Occurrence(FirstAfterOrAt, t0, ofday, time.UTC))
	})

	t.Run("LastBeforeOrAt", func(t *testing.T) {
		t.Parallel()
		// earlier today
		got := Occurrence(LastBeforeOrAt, t0, 5*time.Hour, time.UTC)
		require.Equal(t, OfStdTime(time.Date(2021, time.March, 4, 5, 0, 0, 0, time.UTC)), got)

		// not yet today: yesterday
		got = Occurrence(LastBeforeOrAt, t0, 6*time.Hour, time.UTC)
		require.Equal(t, OfStdTime(time.Date(2021, time.March, 3, 6, 0, 0, 0, time.UTC)), got)
	})

	t.Run("FixedZone", func(t *testing.T) {
		t.Parallel()
		tokyo := time.FixedZone("UTC+9", 9*60*60)
		// 05:06 UTC is 14:06 in UTC+9; next 15:00 there is 06:00 UTC
		got := Occurrence(FirstAfterOrAt, t0, 15*time.Hour, tokyo)
		require.Equal(t, OfStdTime(time.Date(2021, time.March, 4, 15, 0, 0, 0, tokyo)), got)
	})
}
