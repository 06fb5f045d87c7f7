// Package treediff computes the minimum-cost edit mapping between two
// ordered labeled trees: which nodes are kept, relabeled, inserted or
// deleted when one tree is turned into the other.
//
// The module is organized in small packages:
//
//	tree/        Node and Tree types, preorder positions, ancestor paths
//	ted/         cost model, the alignment engine, mapping order and rendering
//	converters/  bracket notation, YAML/JSON tree documents, Markdown structure
//	builder/     synthetic trees (path, star, complete, random) for tests and benchmarks
//	cmd/treediff the command line front end
//
// Quick start:
//
//	a, _ := converters.ParseBracket("{A{B{D}}}")
//	b, _ := converters.ParseBracket("{A{B}{C{D}}}")
//	res, _ := ted.Diff(a, b)
//	lines, _ := ted.Describe(a, b, res.Mapping)
//	// cost 2: B becomes C, B is inserted before it
//
// Positions are 1-based preorder ranks; tree.None marks the absent side of
// an insertion or a deletion.
package treediff
