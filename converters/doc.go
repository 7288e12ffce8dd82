// Package converters moves epinet graphs in and out of text formats.
//
// Adjacency-list format (read and written):
//
//	line 1:       N, the vertex count
//	line 2..N+1:  neighbor IDs of vertex 0..N-1, separated by whitespace or commas;
//	              an empty line is an isolated vertex
//
// Example (vertex 0 touches 1 and 2, the others touch 0):
//
//	3
//	1 2
//	0
//	0
//
// No reciprocal entries are inferred: the file is taken exactly as written, so
// an asymmetric file yields an asymmetric graph unless WithStrictSymmetry is
// given. Payloads of loaded graphs are zero values.
//
// Malformed input never panics; it is reported as a *ParseError carrying the
// 1-based line number and wrapping one of ErrMalformedCount, ErrTruncated,
// ErrBadNeighbor, ErrTrailingData or ErrAsymmetric.
//
// Graphviz: WriteDOT emits an undirected DOT graph labelled with each
// vertex's printed payload, and RenderSVG turns DOT text into SVG through
// the embedded Graphviz runtime of goccy/go-graphviz.
package converters
