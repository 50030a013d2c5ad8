package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/cwbudde/algo-tonnetz/ring"
	"github.com/cwbudde/algo-tonnetz/tonnetz"
)

// ErrNilNetwork is returned when a nil network is rendered.
var ErrNilNetwork = errors.New("render: nil network")

// edgeColors cycles per multiplier position so parallel edges stay apart.
var edgeColors = []string{"black", "blue", "darkgreen", "purple", "orange", "brown"}

// Marshal returns the DOT encoding of n.
func Marshal(n *tonnetz.Network, opts ...Option) ([]byte, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	cfg := applyOptions(opts)

	g, err := build(n, cfg)
	if err != nil {
		return nil, err
	}
	return dot.MarshalMulti(g, "", "", "\t")
}

// node is a residue with its drawing attributes.
type node struct {
	id    int64
	attrs encoding.Attributes
}

func (n node) ID() int64                        { return n.id }
func (n node) DOTID() string                    { return strconv.FormatInt(n.id, 10) }
func (n node) Attributes() []encoding.Attribute { return n.attrs }

// line is a weighted edge with its drawing attributes.
type line struct {
	multi.WeightedLine
	attrs encoding.Attributes
}

func (l line) Attributes() []encoding.Attribute { return l.attrs }

// dotGraph decorates a multigraph with top-level attributes and subgraphs.
type dotGraph struct {
	*multi.WeightedDirectedGraph
	id         string
	graphAttrs encoding.Attributes
	nodeAttrs  encoding.Attributes
	edgeAttrs  encoding.Attributes
	subgraphs  []dot.Multigraph
}

func (g *dotGraph) DOTID() string { return g.id }

func (g *dotGraph) DOTAttributers() (graphAttrs, nodeAttrs, edgeAttrs encoding.Attributer) {
	return &g.graphAttrs, &g.nodeAttrs, &g.edgeAttrs
}

func (g *dotGraph) Structure() []dot.Multigraph { return g.subgraphs }

func build(n *tonnetz.Network, cfg config) (*dotGraph, error) {
	g := &dotGraph{
		WeightedDirectedGraph: multi.NewWeightedDirectedGraph(),
		id:                    cfg.name,
		graphAttrs: encoding.Attributes{
			{Key: "label", Value: title(n)},
			{Key: "labelloc", Value: "t"},
			{Key: "fontsize", Value: "18"},
		},
		nodeAttrs: encoding.Attributes{
			{Key: "shape", Value: "circle"},
			{Key: "style", Value: "filled"},
			{Key: "fillcolor", Value: "lightgray"},
			{Key: "fixedsize", Value: "true"},
			{Key: "width", Value: "0.5"},
		},
		edgeAttrs: encoding.Attributes{
			{Key: "arrowhead", Value: "vee"},
		},
	}
	if cfg.clock {
		g.graphAttrs = append(g.graphAttrs, encoding.Attribute{Key: "layout", Value: "neato"})
	} else {
		g.graphAttrs = append(g.graphAttrs, encoding.Attribute{Key: "rankdir", Value: "LR"})
	}

	pos := ClockPositions(n.Modulus())
	nodes := make(map[int]node, n.Order())
	for _, v := range n.Nodes() {
		nd := node{id: int64(v)}
		if cfg.clock {
			p := pos[v]
			nd.attrs = encoding.Attributes{{
				Key:   "pos",
				Value: fmt.Sprintf("%.3f,%.3f!", cfg.radius*p.X, cfg.radius*p.Y),
			}}
		}
		nodes[v] = nd
		g.AddNode(nd)
	}

	colorOf := make(map[int]string)
	for i, m := range n.Multipliers() {
		if _, ok := colorOf[m]; !ok {
			colorOf[m] = edgeColors[i%len(edgeColors)]
		}
	}
	for _, e := range n.Edges() {
		wl := g.NewWeightedLine(nodes[e.From], nodes[e.To], float64(e.Weight)).(multi.WeightedLine)
		g.SetWeightedLine(line{
			WeightedLine: wl,
			attrs: encoding.Attributes{
				{Key: "label", Value: strconv.Itoa(e.Weight)},
				{Key: "color", Value: colorOf[e.Weight]},
			},
		})
	}

	if cfg.clusters {
		subs, err := clusters(n, nodes)
		if err != nil {
			return nil, err
		}
		g.subgraphs = subs
	}
	return g, nil
}

// clusters returns one frame per unit orbit. A residue is drawn in the frame
// of the first orbit containing it and empty frames are skipped.
func clusters(n *tonnetz.Network, nodes map[int]node) ([]dot.Multigraph, error) {
	orbits, err := ring.UnitOrbits(n.Modulus())
	if err != nil {
		return nil, err
	}

	placed := make(map[int]bool, len(nodes))
	var out []dot.Multigraph
	for _, d := range orbits.Divisors() {
		sub := &dotGraph{
			WeightedDirectedGraph: multi.NewWeightedDirectedGraph(),
			id:                    "cluster_" + strconv.Itoa(d),
			graphAttrs: encoding.Attributes{
				{Key: "label", Value: orbitLabel(d, n.Modulus())},
				{Key: "style", Value: "rounded"},
				{Key: "color", Value: "red"},
			},
		}
		for _, r := range orbits[d] {
			nd, ok := nodes[r]
			if !ok || placed[r] {
				continue
			}
			placed[r] = true
			sub.AddNode(nd)
		}
		if sub.Nodes().Len() == 0 {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

func title(n *tonnetz.Network) string {
	mults := n.Multipliers()
	parts := make([]string, len(mults))
	for i, m := range mults {
		parts[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("Tonnetz for multipliers [%s] in ℤ/%dℤ", strings.Join(parts, ", "), n.Modulus())
}

func orbitLabel(d, modulus int) string {
	if d == 1 {
		return fmt.Sprintf("U(%d)", modulus)
	}
	return fmt.Sprintf("%d·U(%d)", d, modulus)
}

var _ graph.WeightedLine = line{}
