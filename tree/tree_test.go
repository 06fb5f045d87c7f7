package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// buildTreeThree builds A→(B, C→(D→E)):
//
//	A(1)
//	├── B(2)
//	└── C(3)
//	    └── D(4)
//	        └── E(5)
func buildTreeThree(t *testing.T) *tree.Tree {
	t.Helper()
	root := tree.NewNode("A")
	root.Add("B")
	root.Add("C").Add("D").Add("E")

	tr, err := tree.New(root)
	require.NoError(t, err)

	return tr
}

func TestNew_NilRoot(t *testing.T) {
	tr, err := tree.New(nil)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, tree.ErrNilNode)
}

func TestNew_RootWithParent(t *testing.T) {
	root := tree.NewNode("A")
	child := root.Add("B")

	_, err := tree.New(child)
	assert.ErrorIs(t, err, tree.ErrHasParent)
}

func TestAddChild_Errors(t *testing.T) {
	a := tree.NewNode("A")
	b := tree.NewNode("B")

	assert.ErrorIs(t, a.AddChild(nil), tree.ErrNilNode)
	assert.ErrorIs(t, a.AddChild(a), tree.ErrHasParent, "a node cannot be its own child")

	require.NoError(t, a.AddChild(b))
	other := tree.NewNode("X")
	assert.ErrorIs(t, other.AddChild(b), tree.ErrHasParent, "b is already attached to a")
	assert.Same(t, a, b.Parent())
	assert.Len(t, a.Children(), 1)
}

func TestAddChild_RejectsAncestor(t *testing.T) {
	a := tree.NewNode("A")
	b := a.Add("B")
	d := b.Add("C").Add("D")

	assert.ErrorIs(t, b.AddChild(a), tree.ErrHasParent, "a is b's father")
	assert.ErrorIs(t, d.AddChild(a), tree.ErrHasParent, "a is d's grandfather's father")
	assert.Nil(t, a.Parent(), "a stays detached")
	assert.Empty(t, d.Children())

	// The structure stays acyclic and indexable.
	tr, err := tree.New(a)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Size())
}

func TestIndex_PreorderPositions(t *testing.T) {
	tr := buildTreeThree(t)

	require.Equal(t, 5, tr.Size())
	want := []string{"A", "B", "C", "D", "E"}
	for p, label := range want {
		n := tr.NodeAt(p + 1)
		require.NotNil(t, n)
		assert.Equal(t, label, n.Label)
		assert.Equal(t, p+1, n.Position())
		assert.Equal(t, label, tr.Label(p+1))
	}
	assert.Same(t, tr.Root(), tr.NodeAt(1), "index[1] must be the root")
}

func TestIndex_FreezesTree(t *testing.T) {
	root := tree.NewNode("A")
	b := root.Add("B")
	assert.Equal(t, tree.None, b.Position(), "no position before indexing")

	tr, err := tree.New(root)
	require.NoError(t, err)
	tr.Index()
	tr.Index() // idempotent

	assert.Equal(t, 2, b.Position())
	assert.ErrorIs(t, b.AddChild(tree.NewNode("C")), tree.ErrFrozen)
	assert.ErrorIs(t, root.AddChild(tree.NewNode("C")), tree.ErrFrozen)
	assert.Equal(t, 2, tr.Size(), "size is unchanged by rejected mutations")
}

func TestNodeAt_OutOfRange(t *testing.T) {
	tr := buildTreeThree(t)

	assert.Nil(t, tr.NodeAt(0))
	assert.Nil(t, tr.NodeAt(-1))
	assert.Nil(t, tr.NodeAt(6))
	assert.Equal(t, "", tr.Label(6))
}

func TestFatherOf(t *testing.T) {
	tr := buildTreeThree(t)

	tests := []struct {
		pos  int
		want int
	}{
		{1, tree.None},
		{2, 1},
		{3, 1},
		{4, 3},
		{5, 4},
	}
	for _, tt := range tests {
		got, err := tr.FatherOf(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "father of %d", tt.pos)
	}

	_, err := tr.FatherOf(0)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
	_, err = tr.FatherOf(6)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
}

func TestDepth(t *testing.T) {
	tr := buildTreeThree(t)

	for p, want := range map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 3} {
		got, err := tr.Depth(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "depth of %d", p)
	}
	_, err := tr.Depth(9)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
}

func TestChildOnPath(t *testing.T) {
	tr := buildTreeThree(t)

	tests := []struct {
		name       string
		ancestor   int
		descendant int
		want       int
	}{
		{"root to deep leaf", 1, 5, 3},
		{"root to direct child", 1, 2, 2},
		{"middle ancestor", 3, 5, 4},
		{"father", 4, 5, 5},
		{"sibling is not an ancestor", 2, 5, tree.None},
		{"descendant is not an ancestor", 5, 4, tree.None},
		{"self is not a proper ancestor", 4, 4, tree.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.ChildOnPath(tt.ancestor, tt.descendant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChildOnPath_InvalidPosition(t *testing.T) {
	tr := buildTreeThree(t)

	_, err := tr.ChildOnPath(1, 1)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition, "the root has no father")
	_, err = tr.ChildOnPath(1, 7)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
	_, err = tr.ChildOnPath(0, 3)
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
}

func TestWalk_StopsEarly(t *testing.T) {
	tr := buildTreeThree(t)

	var seen []string
	tr.Walk(func(p int, n *tree.Node) bool {
		seen = append(seen, n.Label)

		return p < 3
	})
	assert.Equal(t, []string{"A", "B", "C"}, seen)
}

func TestString(t *testing.T) {
	tr := buildTreeThree(t)

	want := "A (@1)\n" +
		"  B (@2)\n" +
		"  C (@3)\n" +
		"    D (@4)\n" +
		"      E (@5)\n"
	assert.Equal(t, want, tr.String())
}

func TestNode_IsLeafAndChildrenCopy(t *testing.T) {
	root := tree.NewNode("A")
	root.Add("B")
	assert.False(t, root.IsLeaf())

	kids := root.Children()
	kids[0] = tree.NewNode("Z")
	assert.Equal(t, "B", root.Children()[0].Label, "Children returns a copy")
	assert.True(t, root.Children()[0].IsLeaf())
	assert.Nil(t, root.Parent())
}
