package ring

import (
	"reflect"
	"testing"
)

func TestDivisors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: 1, want: []int{1}},
		{n: 7, want: []int{1, 7}},
		{n: 12, want: []int{1, 2, 3, 4, 6, 12}},
		{n: 16, want: []int{1, 2, 4, 8, 16}},
		{n: 36, want: []int{1, 2, 3, 4, 6, 9, 12, 18, 36}},
	}

	for _, tt := range tests {
		got, err := Divisors(tt.n)
		if err != nil {
			t.Fatalf("Divisors(%d) error = %v", tt.n, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Divisors(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: 1, want: []int{0}},
		{n: 2, want: []int{1}},
		{n: 3, want: []int{1, 2}},
		{n: 4, want: []int{1, 3}},
		{n: 6, want: []int{1, 5}},
		{n: 9, want: []int{1, 2, 4, 5, 7, 8}},
		{n: 10, want: []int{1, 3, 7, 9}},
		{n: 12, want: []int{1, 5, 7, 11}},
	}

	for _, tt := range tests {
		got, err := Units(tt.n)
		if err != nil {
			t.Fatalf("Units(%d) error = %v", tt.n, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Units(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestUnitsAreExactlyCoprimeResidues(t *testing.T) {
	for n := 1; n <= 120; n++ {
		units, err := Units(n)
		if err != nil {
			t.Fatalf("Units(%d) error = %v", n, err)
		}
		in := make(map[int]bool, len(units))
		for _, u := range units {
			if u < 0 || u >= n {
				t.Fatalf("Units(%d) contains %d outside [0,n)", n, u)
			}
			if GCD(u, n) != 1 {
				t.Fatalf("Units(%d) contains non-unit %d", n, u)
			}
			in[u] = true
		}
		for r := 0; r < n; r++ {
			if GCD(r, n) == 1 && !in[r] {
				t.Fatalf("Units(%d) is missing %d", n, r)
			}
		}
	}
}

func TestTotientMatchesUnitCount(t *testing.T) {
	for n := 2; n <= 200; n++ {
		phi, err := Totient(n)
		if err != nil {
			t.Fatalf("Totient(%d) error = %v", n, err)
		}
		units, _ := Units(n)
		if phi != len(units) {
			t.Fatalf("Totient(%d) = %d, want %d", n, phi, len(units))
		}
	}
}

func TestUnitOrbitSizes(t *testing.T) {
	tests := []struct {
		n     int
		sizes map[int]int
	}{
		{n: 1, sizes: map[int]int{1: 1}},
		{n: 2, sizes: map[int]int{1: 1, 2: 1}},
		{n: 4, sizes: map[int]int{1: 2, 2: 1, 4: 1}},
		{n: 6, sizes: map[int]int{1: 2, 2: 2, 3: 1, 6: 1}},
		{n: 9, sizes: map[int]int{1: 6, 3: 2, 9: 1}},
		{n: 10, sizes: map[int]int{1: 4, 2: 4, 5: 1, 10: 1}},
		{n: 12, sizes: map[int]int{1: 4, 2: 2, 3: 2, 4: 2, 6: 1, 12: 1}},
	}

	for _, tt := range tests {
		orbits, err := UnitOrbits(tt.n)
		if err != nil {
			t.Fatalf("UnitOrbits(%d) error = %v", tt.n, err)
		}
		if len(orbits) != len(tt.sizes) {
			t.Fatalf("UnitOrbits(%d) has %d keys, want %d", tt.n, len(orbits), len(tt.sizes))
		}
		for d, size := range tt.sizes {
			if got := len(orbits[d]); got != size {
				t.Fatalf("UnitOrbits(%d)[%d] size = %d, want %d", tt.n, d, got, size)
			}
		}
	}
}

func TestUnitOrbitsTwelve(t *testing.T) {
	orbits, err := UnitOrbits(12)
	if err != nil {
		t.Fatalf("UnitOrbits() error = %v", err)
	}
	if got := orbits.Divisors(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 6, 12}) {
		t.Fatalf("Divisors() = %v", got)
	}
	if !reflect.DeepEqual(orbits[4], []int{4, 8}) {
		t.Fatalf("orbit of 4 = %v, want [4 8]", orbits[4])
	}
	if !reflect.DeepEqual(orbits[12], []int{0}) {
		t.Fatalf("orbit of 12 = %v, want [0]", orbits[12])
	}
	if !orbits.Contains(3, 9) || orbits.Contains(3, 6) || orbits.Contains(5, 5) {
		t.Fatal("Contains() disagrees with orbit contents")
	}
}

func TestUnitOrbitsCoverResidues(t *testing.T) {
	for n := 1; n <= 60; n++ {
		orbits, err := UnitOrbits(n)
		if err != nil {
			t.Fatalf("UnitOrbits(%d) error = %v", n, err)
		}
		total := 0
		for _, d := range orbits.Divisors() {
			total += len(orbits[d])
		}
		if total != n {
			t.Fatalf("UnitOrbits(%d) holds %d residues, want %d", n, total, n)
		}
		for r := 0; r < n; r++ {
			if d := GCD(r, n); !orbits.Contains(d, r) {
				t.Fatalf("UnitOrbits(%d): %d missing from orbit of %d", n, r, d)
			}
		}
	}
}

func TestModAndGCD(t *testing.T) {
	if Mod(-1, 3) != 2 || Mod(7, 3) != 1 || Mod(0, 1) != 0 {
		t.Fatal("Mod() returned a residue outside [0,n)")
	}
	if GCD(-12, 18) != 6 || GCD(0, 5) != 5 || GCD(0, 0) != 0 {
		t.Fatal("GCD() mismatch")
	}
}
