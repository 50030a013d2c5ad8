package tonnetz

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-tonnetz/ring"
)

// Edge is a directed edge From -> To generated by multiplier Weight.
type Edge struct {
	From   int
	To     int
	Weight int
}

// IsLoop reports whether the edge starts and ends at the same residue.
func (e Edge) IsLoop() bool { return e.From == e.To }

// String formats the edge as (from,to,weight).
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.From, e.To, e.Weight)
}

// Network is an immutable tone network over Z/NZ.
type Network struct {
	modulus     int
	multipliers []int
	loops       bool
	zero        bool

	nodes []int
	edges []Edge
	index map[Edge]struct{}
	out   map[int][]int
}

// New builds the tone network of modulus N for the given multipliers.
//
// Sources are visited in ascending order and multipliers in list order, so
// Edges reports a deterministic order. Duplicated multipliers are examined
// again but yield no new edges.
func New(modulus int, multipliers []int, opts ...Option) (*Network, error) {
	if modulus < 1 {
		return nil, fmt.Errorf("%w: %d", ErrModulus, modulus)
	}
	cfg := applyOptions(opts)

	n := &Network{
		modulus:     modulus,
		multipliers: append([]int(nil), multipliers...),
		loops:       cfg.loops,
		zero:        cfg.zero,
		index:       make(map[Edge]struct{}),
		out:         make(map[int][]int),
	}

	first := 1
	if cfg.zero {
		first = 0
	}
	present := make(map[int]bool, modulus)
	for u := first; u < modulus; u++ {
		present[u] = true
	}

	for u := first; u < modulus; u++ {
		for _, m := range n.multipliers {
			v := ring.Mod(u*ring.Mod(m, modulus), modulus)
			if u == v && !cfg.loops {
				continue
			}
			e := Edge{From: u, To: v, Weight: m}
			if _, dup := n.index[e]; dup {
				continue
			}
			n.index[e] = struct{}{}
			n.out[u] = append(n.out[u], len(n.edges))
			n.edges = append(n.edges, e)
			present[v] = true
		}
	}

	n.nodes = make([]int, 0, len(present))
	for v := range present {
		n.nodes = append(n.nodes, v)
	}
	sort.Ints(n.nodes)
	return n, nil
}

// Modulus returns N.
func (n *Network) Modulus() int { return n.modulus }

// Multipliers returns a copy of the generating multipliers in input order.
func (n *Network) Multipliers() []int {
	return append([]int(nil), n.multipliers...)
}

// Loops reports whether self-loops were kept.
func (n *Network) Loops() bool { return n.loops }

// IncludesZero reports whether residue 0 was used as a source.
func (n *Network) IncludesZero() bool { return n.zero }

// Nodes returns the residues in the network in ascending order, isolated
// ones included.
func (n *Network) Nodes() []int {
	out := make([]int, len(n.nodes))
	copy(out, n.nodes)
	return out
}

// HasNode reports whether residue v is a node.
func (n *Network) HasNode(v int) bool {
	i := sort.SearchInts(n.nodes, v)
	return i < len(n.nodes) && n.nodes[i] == v
}

// Edges returns a copy of the edges in generation order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// HasEdge reports whether the triple (from, to, weight) is an edge.
func (n *Network) HasEdge(from, to, weight int) bool {
	_, ok := n.index[Edge{From: from, To: to, Weight: weight}]
	return ok
}

// OutEdges returns the edges leaving u in generation order.
func (n *Network) OutEdges(u int) []Edge {
	idx := n.out[u]
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = n.edges[j]
	}
	return out
}

// Order returns the number of nodes.
func (n *Network) Order() int { return len(n.nodes) }

// Size returns the number of edges.
func (n *Network) Size() int { return len(n.edges) }
