// Package fourier computes the discrete Fourier transform of periodic
// signals and decorates tone networks with their Fourier components.
//
// The forward transform is unnormalized:
//
//	X[k] = sum_n s(n) * exp(-2*pi*i*k*n/N)
//
// and [Inverse] applies the 1/N factor. Power-of-two lengths run on an
// algo-fft plan, other lengths on gonum's mixed-radix FFT, and
// [MethodDirect] evaluates the O(N^2) sum. All methods agree within
// floating-point tolerance.
package fourier
