package tree

import (
	"fmt"
	"strings"
)

// New wraps root in a Tree. The tree is not indexed until the first
// positional query or an explicit Index call.
//
// Errors:
//   - ErrNilNode   if root is nil.
//   - ErrHasParent if root is attached to another node.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if root.parent != nil {
		return nil, fmt.Errorf("tree: New(%q): %w", root.Label, ErrHasParent)
	}

	return &Tree{root: root}, nil
}

// Index assigns preorder positions 1..N with a single traversal and freezes
// every node of the tree. Calling it again is a no-op. Index is safe for
// concurrent use; every positional query calls it first, so a Tree may be
// shared by concurrent readers without indexing it up front.
// Complexity: O(N) time and memory.
func (t *Tree) Index() { t.once.Do(t.build) }

func (t *Tree) build() {
	// 1. Preorder traversal with an explicit stack; children are pushed in
	//    reverse so the leftmost child is popped first.
	index := []*Node{nil}
	father := []int{None}
	depth := []int{0}
	type frame struct {
		node   *Node
		father int
		depth  int
	}
	stack := []frame{{node: t.root, father: None, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. Assign the next position and freeze the node.
		f.node.pos = len(index)
		f.node.frozen = true
		index = append(index, f.node)
		father = append(father, f.father)
		depth = append(depth, f.depth)

		for k := len(f.node.children) - 1; k >= 0; k-- {
			stack = append(stack, frame{node: f.node.children[k], father: f.node.pos, depth: f.depth + 1})
		}
	}

	t.index, t.father, t.depth = index, father, depth
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of nodes.
func (t *Tree) Size() int {
	t.Index()

	return len(t.index) - 1
}

// valid reports whether p is a position of t.
func (t *Tree) valid(p int) bool {
	t.Index()

	return p >= 1 && p < len(t.index)
}

func (t *Tree) invalid(op string, p int) error {
	return fmt.Errorf("tree: %s(%d) with size %d: %w", op, p, len(t.index)-1, ErrInvalidPosition)
}

// NodeAt returns the node at position p, or nil if p is outside 1..Size().
func (t *Tree) NodeAt(p int) *Node {
	if !t.valid(p) {
		return nil
	}

	return t.index[p]
}

// Label returns the label at position p, or "" if p is outside 1..Size().
func (t *Tree) Label(p int) string {
	if !t.valid(p) {
		return ""
	}

	return t.index[p].Label
}

// FatherOf returns the position of p's father, or None if p is the root.
// It fails with ErrInvalidPosition if p is outside 1..Size().
func (t *Tree) FatherOf(p int) (int, error) {
	if !t.valid(p) {
		return None, t.invalid("FatherOf", p)
	}

	return t.father[p], nil
}

// Depth returns the number of edges between p and the root.
// It fails with ErrInvalidPosition if p is outside 1..Size().
func (t *Tree) Depth(p int) (int, error) {
	if !t.valid(p) {
		return 0, t.invalid("Depth", p)
	}

	return t.depth[p], nil
}

// ChildOnPath returns the child of ancestor lying on the path down to
// descendant.
//
// It returns None, without error, when climbing from descendant reaches the
// root without passing through ancestor. It fails with ErrInvalidPosition if
// either position is out of range or if descendant is the root.
// Complexity: O(depth(descendant)).
func (t *Tree) ChildOnPath(ancestor, descendant int) (int, error) {
	if !t.valid(ancestor) {
		return None, t.invalid("ChildOnPath", ancestor)
	}
	if !t.valid(descendant) {
		return None, t.invalid("ChildOnPath", descendant)
	}
	if t.father[descendant] == None {
		return None, fmt.Errorf("tree: ChildOnPath(%d, %d): root has no father: %w", ancestor, descendant, ErrInvalidPosition)
	}

	for cur := descendant; t.father[cur] != None; cur = t.father[cur] {
		if t.father[cur] == ancestor {
			return cur, nil
		}
	}

	return None, nil
}

// Walk calls fn for every position in preorder, stopping early when fn
// returns false.
func (t *Tree) Walk(fn func(p int, n *Node) bool) {
	t.Index()
	for p := 1; p < len(t.index); p++ {
		if !fn(p, t.index[p]) {
			return
		}
	}
}

// String renders an indented outline, one node per line, with positions:
//
//	A (@1)
//	  B (@2)
//	  C (@3)
//	    D (@4)
func (t *Tree) String() string {
	var b strings.Builder
	t.Walk(func(p int, n *Node) bool {
		b.WriteString(strings.Repeat("  ", t.depth[p]))
		fmt.Fprintf(&b, "%s (@%d)\n", n.Label, p)

		return true
	})

	return b.String()
}
