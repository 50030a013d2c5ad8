package ring

import "fmt"

// PrimePower is one factor p^k of a prime factorization.
type PrimePower struct {
	Prime    int
	Exponent int
}

// PrimesBelow returns the ascending primes strictly less than bound.
//
// It runs a sieve of Eratosthenes over a boolean table of size bound and
// returns an empty slice for bound < 2.
func PrimesBelow(bound int) []int {
	if bound < 2 {
		return []int{}
	}

	composite := make([]bool, bound)
	composite[0], composite[1] = true, true
	for i := 2; i*i < bound; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < bound; j += i {
			composite[j] = true
		}
	}

	out := make([]int, 0, bound/2)
	for i, c := range composite {
		if !c {
			out = append(out, i)
		}
	}
	return out
}

// PrimeDivisors returns the distinct primes dividing n in ascending order.
// PrimeDivisors(1) is empty.
func PrimeDivisors(n int) ([]int, error) {
	powers, err := PrimePowers(n)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(powers))
	for i, pp := range powers {
		out[i] = pp.Prime
	}
	return out, nil
}

// PrimePowers returns the full prime factorization of n in ascending prime
// order, found by trial division up to sqrt(n).
func PrimePowers(n int) ([]PrimePower, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}

	out := []PrimePower{}
	for d := 2; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		k := 0
		for n%d == 0 {
			n /= d
			k++
		}
		out = append(out, PrimePower{Prime: d, Exponent: k})
	}
	if n > 1 {
		out = append(out, PrimePower{Prime: n, Exponent: 1})
	}
	return out, nil
}
