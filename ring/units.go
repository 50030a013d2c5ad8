package ring

import (
	"fmt"
	"sort"
)

// Units returns the residues r in [0, n) with gcd(r, n) = 1, ascending.
//
// For n = 1 the single residue 0 qualifies, since gcd(0, 1) = 1.
func Units(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}
	out := make([]int, 0, n)
	for r := 0; r < n; r++ {
		if GCD(r, n) == 1 {
			out = append(out, r)
		}
	}
	return out, nil
}

// Totient returns Euler's phi(n), the number of integers in [1, n] coprime
// to n.
func Totient(n int) (int, error) {
	powers, err := PrimePowers(n)
	if err != nil {
		return 0, err
	}
	phi := n
	for _, pp := range powers {
		phi = phi / pp.Prime * (pp.Prime - 1)
	}
	return phi, nil
}

// Orbits maps a divisor d of the modulus to the residues d*u mod n for every
// unit u.
//
// Residue r lies in the orbit of gcd(r, n), so the orbits of all divisors
// together cover [0, n).
type Orbits map[int][]int

// Divisors returns the keys of o in ascending order.
func (o Orbits) Divisors() []int {
	out := make([]int, 0, len(o))
	for d := range o {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether residue r lies in the orbit of divisor d.
func (o Orbits) Contains(d, r int) bool {
	orbit, ok := o[d]
	if !ok {
		return false
	}
	i := sort.SearchInts(orbit, r)
	return i < len(orbit) && orbit[i] == r
}

// UnitOrbits returns, for each divisor d of n, the sorted and deduplicated
// set {d*u mod n : u in Units(n)}.
func UnitOrbits(n int) (Orbits, error) {
	divs, err := Divisors(n)
	if err != nil {
		return nil, err
	}
	units, err := Units(n)
	if err != nil {
		return nil, err
	}

	out := make(Orbits, len(divs))
	for _, d := range divs {
		seen := make(map[int]struct{}, len(units))
		orbit := make([]int, 0, len(units))
		for _, u := range units {
			r := (d * u) % n
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			orbit = append(orbit, r)
		}
		sort.Ints(orbit)
		out[d] = orbit
	}
	return out, nil
}
