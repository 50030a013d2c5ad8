package fourier

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-tonnetz/dsp/signal"
	"github.com/cwbudde/algo-tonnetz/internal/testutil"
	"github.com/cwbudde/algo-tonnetz/tonnetz"
)

func TestWeightedNetworkPayloads(t *testing.T) {
	tests := []struct {
		name    string
		samples []complex128
		mults   []int
	}{
		{name: "impulse", samples: testutil.Real(1, 0, 0, 0), mults: []int{1, 2}},
		{name: "dc", samples: testutil.Real(1, 1, 1, 1), mults: []int{1, 3}},
		{name: "nyquist", samples: testutil.Real(1, -1, 1, -1), mults: []int{1}},
		{name: "noise length 6", samples: testutil.DeterministicNoise(3, 1, 6), mults: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSignal(t, tt.samples)
			net, err := WeightedNetwork(s, tt.mults)
			if err != nil {
				t.Fatalf("WeightedNetwork() error = %v", err)
			}
			x, _ := Transform(s)
			n := len(tt.samples)

			if net.Modulus() != n || net.Order() != n {
				t.Fatalf("modulus/order = %d/%d, want %d", net.Modulus(), net.Order(), n)
			}
			if !net.IncludesZero() {
				t.Fatal("zero must be included")
			}
			for k := 0; k < n; k++ {
				p, ok := net.Payload(k)
				if !ok {
					t.Fatalf("node %d has no payload", k)
				}
				char, _ := signal.Character(k, n)
				want := char.Samples()
				for i := range want {
					want[i] *= x[k]
				}
				testutil.RequireComplexSliceNearlyEqual(t, p.Samples(), want, 1e-10)
			}
		})
	}
}

func TestWeightedNetworkKeepsGraphOptions(t *testing.T) {
	s := mustSignal(t, testutil.Real(1, 2, 3, 4, 5))
	net, err := WeightedNetwork(s, []int{1}, tonnetz.WithLoops(true), tonnetz.WithZero(false))
	if err != nil {
		t.Fatalf("WeightedNetwork() error = %v", err)
	}
	if !net.Loops() || net.Size() != 5 {
		t.Fatalf("loops=%v size=%d, want true/5", net.Loops(), net.Size())
	}
	if !net.IncludesZero() {
		t.Fatal("WithZero(false) must not override zero inclusion")
	}
}

func TestSynthesizeRecoversSignal(t *testing.T) {
	for _, n := range []int{1, 4, 7, 12} {
		samples := testutil.DeterministicNoise(int64(n), 1, n)
		net, err := WeightedNetwork(mustSignal(t, samples), []int{2, 3})
		if err != nil {
			t.Fatalf("WeightedNetwork() error = %v", err)
		}
		back, err := Synthesize(net)
		if err != nil {
			t.Fatalf("Synthesize() error = %v", err)
		}
		testutil.RequireComplexSliceNearlyEqual(t, back.Samples(), samples, 1e-9)
	}
}

func TestWeightedNetworkNil(t *testing.T) {
	if _, err := WeightedNetwork(nil, []int{1}); !errors.Is(err, ErrNilSignal) {
		t.Fatalf("WeightedNetwork(nil) error = %v, want ErrNilSignal", err)
	}
	if _, err := Synthesize(nil); !errors.Is(err, ErrNilNetwork) {
		t.Fatalf("Synthesize(nil) error = %v, want ErrNilNetwork", err)
	}
}
