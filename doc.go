// Package geomlang implements a small expression language whose
// values are planar geometric objects: the empty set, points,
// infinite lines (with vertical lines as their own kind) and finite
// segments. The language has three compound operations: pairwise
// intersection, translation, and variable binding.
//
// Programs are written as s-expressions:
//
//	(let p (point 1 1)
//	  (intersect p (shift 1 1 (point 0 0))))
//
// [Parse] reads this syntax into an expression tree, [Normalize]
// rewrites segment literals into canonical form, and [Evaluate]
// produces the resulting [Value]. Expression trees can equally be
// built directly from the node types.
//
// All geometric comparisons are tolerant: coordinates within 0.00001
// of each other are treated as equal. The tolerance makes results
// robust against floating point noise but is not transitive; chains
// of nearly-equal values may compare unequal end to end.
package geomlang
