package tonnetz

import (
	"github.com/cwbudde/algo-tonnetz/dsp/signal"
)

// SignalNetwork is a tone network whose modulus is the length of a tonic
// signal and whose node v carries tonic.ScaleTime(v).
type SignalNetwork struct {
	*Network

	tonic    *signal.Signal
	payloads map[int]*signal.Signal
}

// NewSignalNetwork builds the tone network of modulus tonic.Len() and
// decorates every node v with tonic.ScaleTime(v).
func NewSignalNetwork(tonic *signal.Signal, multipliers []int, opts ...Option) (*SignalNetwork, error) {
	if tonic == nil {
		return nil, ErrNilTonic
	}
	base, err := New(tonic.Len(), multipliers, opts...)
	if err != nil {
		return nil, err
	}

	payloads := make(map[int]*signal.Signal, len(base.nodes))
	for _, v := range base.nodes {
		payloads[v] = tonic.ScaleTime(v)
	}
	return &SignalNetwork{Network: base, tonic: tonic, payloads: payloads}, nil
}

// Tonic returns the undecorated base signal.
func (s *SignalNetwork) Tonic() *signal.Signal { return s.tonic }

// Payload returns the signal carried by node v.
func (s *SignalNetwork) Payload(v int) (*signal.Signal, bool) {
	p, ok := s.payloads[v]
	return p, ok
}

// Payloads returns a copy of the node -> signal map.
func (s *SignalNetwork) Payloads() map[int]*signal.Signal {
	out := make(map[int]*signal.Signal, len(s.payloads))
	for v, p := range s.payloads {
		out[v] = p
	}
	return out
}

// MapPayloads returns a network with the same graph and tonic whose payloads
// are fn(node, payload). The receiver is not modified.
func (s *SignalNetwork) MapPayloads(fn func(node int, payload *signal.Signal) *signal.Signal) *SignalNetwork {
	payloads := make(map[int]*signal.Signal, len(s.payloads))
	for _, v := range s.nodes {
		payloads[v] = fn(v, s.payloads[v])
	}
	return &SignalNetwork{Network: s.Network, tonic: s.tonic, payloads: payloads}
}
