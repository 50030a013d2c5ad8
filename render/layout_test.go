package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClockPositions(t *testing.T) {
	got := ClockPositions(4)
	want := []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i].X, got[i].X, 1e-12, "x of %d", i)
		require.InDelta(t, want[i].Y, got[i].Y, 1e-12, "y of %d", i)
	}
}

func TestClockPositionsOnUnitCircle(t *testing.T) {
	for _, p := range ClockPositions(12) {
		require.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
	}
	require.Nil(t, ClockPositions(0))
}
