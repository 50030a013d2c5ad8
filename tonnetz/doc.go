// Package tonnetz builds tone networks: directed weighted graphs over the
// residues modulo N generated by a list of integer multipliers.
//
// For every source residue u and multiplier m the network holds the edge
// u -> (u*m mod N) with weight m. Edges are stored as plain (From, To,
// Weight) triples and node payloads as an explicit node -> signal map; any
// styling used for display belongs to the renderer, never to the network.
//
// Policies:
//
//   - Self-loops are dropped unless [WithLoops] is set.
//   - Residue 0 is a source only when [WithZero] is set. It still appears as
//     a node when some edge targets it, as happens for non-unit multipliers.
//   - Identical (From, To, Weight) triples collapse to one edge; different
//     weights between the same pair are kept as parallel edges.
//
// Networks are immutable after construction and safe for concurrent reads.
package tonnetz
