// Package tree provides ordered, labeled rooted trees addressed by preorder
// position, the input model of the tree edit distance engine in package ted.
//
// What is a positional tree?
//
//	Every node carries a string label and an ordered list of children.
//	Once the tree is indexed, each node is identified by its 1-based
//	preorder rank: the root is 1, then its first child's subtree, then the
//	next child's subtree, and so on.
//
//	      A(1)
//	     /    \
//	   B(2)   C(3)
//	            \
//	            D(4)
//
// Lifecycle:
//
//  1. Build nodes with NewNode and attach them with AddChild.
//  2. Wrap the root with New.
//  3. Query. The first positional query (or an explicit Index call) assigns
//     positions by a single preorder traversal and freezes the tree:
//     further AddChild calls on any of its nodes fail with ErrFrozen.
//     Indexing runs exactly once even under concurrent queries, so an
//     indexed or unindexed Tree may be shared by concurrent readers.
//
// Queries:
//
//   - NodeAt(p)               node at p, nil outside 1..Size()
//   - FatherOf(p)             father's position, None for the root
//   - ChildOnPath(a, d)       child of a on the path down to d, None if a is not an ancestor
//   - AncestorPath(p)         iter.Seq[int] yielding p, father(p), ..., root
//   - Ancestors(p)            the same sequence as a slice
//   - Depth(p), Label(p), Walk(fn), String()
//
// Errors:
//
//   - ErrNilNode           nil root or child.
//   - ErrHasParent         child already attached elsewhere, child is an ancestor, or root with a parent.
//   - ErrFrozen            mutation after the tree has been indexed.
//   - ErrInvalidPosition   position outside 1..Size(), or asking the root for a father.
//
// Complexity:
//
//   - Index:          O(N) time and memory.
//   - NodeAt/FatherOf/Depth: O(1).
//   - ChildOnPath/AncestorPath: O(depth).
package tree
