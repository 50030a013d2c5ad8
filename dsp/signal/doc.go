// Package signal models finite periodic signals on the residue ring Z/NZ.
//
// A [Signal] is an immutable sequence of N complex samples whose index is
// read modulo N. Every transform returns a new Signal. The package also holds
// the boundary adapters to waveform collaborators: [FromReal] and
// [FromPCM16] wrap decoded samples, and [Generator] renders a Signal to a
// normalized waveform at a fixed sample rate.
package signal
