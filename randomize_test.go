package timens

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpan_Randomize(t *testing.T) {
	t.Parallel()

	t.Run("StaysWithinPercent", func(t *testing.T) {
		t.Parallel()
		r := rand.New(rand.NewPCG(1, 2))
		base := OfSec(10)
		lo := OfSec(8)
		hi := OfSec(12)
		for range 1000 {
			got := base.Randomize(r, 0.2)
			require.GreaterOrEqual(t, got, lo)
			require.LessOrEqual(t, got, hi)
		}
	})

	t.Run("NegativeSpan", func(t *testing.T) {
		t.Parallel()
		r := rand.New(rand.NewPCG(3, 4))
		base := OfSec(-10)
		for range 1000 {
			got := base.Randomize(r, 0.2)
			require.GreaterOrEqual(t, got, OfSec(-12))
			require.LessOrEqual(t, got, OfSec(-8))
		}
	})

	t.Run("DeterministicWhenSeeded", func(t *testing.T) {
		t.Parallel()
		a := rand.New(rand.NewPCG(42, 0))
		b := rand.New(rand.NewPCG(42, 0))
		base := OfMin(5)
		for range 100 {
			require.Equal(t, base.Randomize(a, 0.5), base.Randomize(b, 0.5))
		}
	})

	t.Run("ZeroPercentIsIdentity", func(t *testing.T) {
		t.Parallel()
		r := rand.New(rand.NewPCG(5, 6))
		require.Equal(t, OfSec(10), OfSec(10).Randomize(r, 0))
	})

	t.Run("PercentOutOfRangePanics", func(t *testing.T) {
		t.Parallel()
		r := rand.New(rand.NewPCG(7, 8))
		require.Panics(t, func() { OfSec(1).Randomize(r, -0.1) })
		require.Panics(t, func() { OfSec(1).Randomize(r, 1.1) })
	})
}
