// Package ring provides the number theory of the residue ring Z/nZ used by
// periodic signals and tone networks.
//
// All functions are pure: they hold no state and return fresh slices or maps
// on every call. Functions that take a modulus reject n < 1 with
// [ErrNonPositive].
package ring
