package tonnetz

import (
	"sort"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph returns a gonum view of the network. Node IDs are residues and line
// weights are the generating multipliers. Every call builds a fresh graph
// that the caller owns.
func (n *Network) Graph() *multi.WeightedDirectedGraph {
	g := multi.NewWeightedDirectedGraph()
	for _, v := range n.nodes {
		g.AddNode(multi.Node(v))
	}
	for _, e := range n.edges {
		g.SetWeightedLine(g.NewWeightedLine(multi.Node(e.From), multi.Node(e.To), float64(e.Weight)))
	}
	return g
}

// Components returns the strongly connected components of the network.
// Members are ascending and components are ordered by their smallest member.
func (n *Network) Components() [][]int {
	sccs := topo.TarjanSCC(n.Graph())

	out := make([][]int, 0, len(sccs))
	for _, scc := range sccs {
		c := make([]int, len(scc))
		for i, v := range scc {
			c[i] = int(v.ID())
		}
		sort.Ints(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
