// Package ted computes the edit distance between two ordered, labeled trees
// and one optimal edit mapping realizing it.
//
// 🚀 What is tree edit distance?
//
//	Given trees A and B, find the cheapest sequence of node deletions,
//	insertions and relabels turning A into B. The answer comes with an edit
//	mapping: pairs of preorder positions (a, b) that are kept (possibly
//	relabeled), plus (a, None) deletions and (None, b) insertions.
//
// ✨ Key features:
//   - exact optimum over ordered trees, unit costs by default (WithCostFunc)
//   - mapping sorted by source then target position, absent sides last
//   - human-readable rendering of every mapping entry (Describe)
//   - bounded memory via WithMaxCells
//
// ⚙️ Usage:
//
//	res, err := ted.Diff(a, b)
//	if err != nil {
//	    // handle ErrNilTree or ErrTooLarge
//	}
//	lines, _ := ted.Describe(a, b, res.Mapping)
//
// Algorithm:
//
//	Three memo tables are filled bottom-up over preorder positions.
//	  - E(s,u,i, t,v,j): best mapping of T[s..i] onto T'[t..j] with s aligned
//	    to t and the path below s down to u (below t down to v) unaligned.
//	  - MIN_M(i,j): best mapping of the prefixes T[1..i], T'[1..j] aligning i with j.
//	  - D(i,j): best mapping of the prefixes T[1..i], T'[1..j].
//	A table of back-pointers runs alongside each; the mapping is read out of
//	D(|A|,|B|) after the fill.
//
// Performance:
//
//   - Time:   O(|A|·|B|·depth(A)²·depth(B)²)
//   - Memory: O(|A|·|B|·depth(A)²·depth(B)²) for E, O(|A|·|B|) for MIN_M and D.
package ted
