package fourier

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tonnetz/internal/testutil"
)

func TestSpectrumAccessors(t *testing.T) {
	x := Spectrum{4, 3 + 4i, -2i, 0}

	if x.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", x.Len())
	}
	if x.At(5) != 3+4i || x.At(-2) != -2i {
		t.Fatal("At() should wrap frequency indices")
	}

	c := x.Coefficients()
	c[0] = 99
	if x[0] != 4 {
		t.Fatal("Coefficients() exposes internal storage")
	}

	m := x.Map()
	if len(m) != 4 || m[1] != 3+4i {
		t.Fatalf("Map() = %v", m)
	}

	testutil.RequireSliceNearlyEqual(t, x.Magnitude(), []float64{4, 5, 2, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, x.Power(), []float64{16, 25, 4, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, x.Phase(), []float64{0, math.Atan2(4, 3), -math.Pi / 2, 0}, 1e-12)

	db := x.PowerDB()
	if math.Abs(db[2]-10*math.Log10(4)) > 1e-12 || !math.IsInf(db[3], -1) {
		t.Fatalf("PowerDB() = %v", db)
	}
}

func TestSpectrumEmpty(t *testing.T) {
	var x Spectrum
	if x.Magnitude() != nil || x.Power() != nil {
		t.Fatal("empty spectrum should yield nil magnitude and power")
	}
	if x.At(3) != 0 || (Spectrum{}).At(-1) != 0 {
		t.Fatal("At() on an empty spectrum should yield 0")
	}
}
