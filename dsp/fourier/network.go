package fourier

import (
	"github.com/cwbudde/algo-tonnetz/dsp/signal"
	"github.com/cwbudde/algo-tonnetz/tonnetz"
)

// WeightedNetwork decomposes s into its Fourier components on a tone
// network.
//
// The network has tonic Character(1, N) with residue 0 always included, so
// node k starts out as the character of frequency k. Each node payload is
// then multiplied by X[k], giving the k-th term of the inverse transform
// scaled by N. Options other than zero inclusion are passed through.
func WeightedNetwork(s *signal.Signal, multipliers []int, opts ...tonnetz.Option) (*tonnetz.SignalNetwork, error) {
	if s == nil {
		return nil, ErrNilSignal
	}
	tonic, err := signal.Character(1, s.Len())
	if err != nil {
		return nil, err
	}

	netOpts := make([]tonnetz.Option, 0, len(opts)+1)
	netOpts = append(netOpts, opts...)
	netOpts = append(netOpts, tonnetz.WithZero(true))
	net, err := tonnetz.NewSignalNetwork(tonic, multipliers, netOpts...)
	if err != nil {
		return nil, err
	}

	x, err := Transform(s)
	if err != nil {
		return nil, err
	}
	return net.MapPayloads(func(k int, p *signal.Signal) *signal.Signal {
		return p.Scale(x[k])
	}), nil
}

// Synthesize sums the payloads of a Fourier-weighted network and divides by
// N, recovering the signal the network was built from.
func Synthesize(net *tonnetz.SignalNetwork) (*signal.Signal, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Modulus()
	acc := make([]complex128, n)
	for _, k := range net.Nodes() {
		p, ok := net.Payload(k)
		if !ok {
			continue
		}
		for t := 0; t < n; t++ {
			acc[t] += p.At(t)
		}
	}
	scale(acc, 1/float64(n))
	return signal.New(acc)
}
