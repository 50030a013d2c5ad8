// Package render turns tone networks into Graphviz DOT documents.
//
// All presentation attributes (shapes, colors, labels, cluster frames,
// positions) are decided here. The network itself carries only residues
// and weighted edges, and rendering never modifies it.
package render
