package ring

import "fmt"

// Divisors returns every positive divisor of n in ascending order.
func Divisors(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}

	small := []int{}
	large := []int{}
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	// large was collected in descending order.
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small, nil
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Mod returns the residue of a modulo n in [0, n). n must be >= 1.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
