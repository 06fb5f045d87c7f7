package ted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuygensING/alexandria-markup-sub001/ted"
	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

func TestClassify(t *testing.T) {
	a, b := mustTree(t, treeOne), mustTree(t, treeTwo)

	cases := []struct {
		pair ted.Pair
		want ted.Op
	}{
		{ted.Pair{From: 1, To: 1}, ted.NoChange},
		{ted.Pair{From: 2, To: 3}, ted.Relabel},
		{ted.Pair{From: tree.None, To: 2}, ted.Insert},
		{ted.Pair{From: 3, To: tree.None}, ted.Delete},
	}
	for _, tc := range cases {
		op, err := ted.Classify(a, b, tc.pair)
		require.NoError(t, err)
		assert.Equal(t, tc.want, op, "pair %v", tc.pair)
	}
}

func TestClassify_Errors(t *testing.T) {
	a, b := mustTree(t, treeOne), mustTree(t, treeTwo)

	_, err := ted.Classify(a, b, ted.Pair{})
	assert.ErrorIs(t, err, ted.ErrEmptyPair)

	_, err = ted.Classify(a, b, ted.Pair{From: 4, To: 1})
	assert.ErrorIs(t, err, tree.ErrInvalidPosition, "source has three nodes")

	_, err = ted.Classify(a, b, ted.Pair{From: tree.None, To: 5})
	assert.ErrorIs(t, err, tree.ErrInvalidPosition, "target has four nodes")

	_, err = ted.Classify(nil, b, ted.Pair{From: 1, To: 1})
	assert.ErrorIs(t, err, ted.ErrNilTree)
}

func TestDescribe_AllKinds(t *testing.T) {
	a, b := mustTree(t, treeOne), mustTree(t, treeTwo)
	m := []ted.Pair{{From: 1, To: 1}, {From: 2, To: 3}, {From: 3, To: tree.None}, {From: tree.None, To: 2}}

	lines, err := ted.Describe(a, b, m)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"No change for A (@1 and @1)",
		"Change from B (@2) to C (@3)",
		"Delete D (@3)",
		"Insert B (@2)",
	}, lines)
}

func TestDescribe_InvalidPair(t *testing.T) {
	a, b := mustTree(t, treeOne), mustTree(t, treeTwo)

	lines, err := ted.Describe(a, b, []ted.Pair{{From: 1, To: 1}, {From: 9, To: 1}})
	assert.ErrorIs(t, err, tree.ErrInvalidPosition)
	assert.Nil(t, lines, "no partial output on error")
}

func TestSummarize(t *testing.T) {
	a, b := mustTree(t, treeOne), mustTree(t, treeThree)
	res, err := ted.Diff(a, b)
	require.NoError(t, err)

	sum, err := ted.Summarize(a, b, res.Mapping)
	require.NoError(t, err)
	assert.Equal(t, ted.Summary{NoChange: 2, Relabel: 1, Insert: 2}, sum)
	assert.Equal(t, 3, sum.Changes())
	assert.Equal(t, res.Cost, sum.Changes(), "unit costs charge one per change")
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "no-change", ted.NoChange.String())
	assert.Equal(t, "relabel", ted.Relabel.String())
	assert.Equal(t, "insert", ted.Insert.String())
	assert.Equal(t, "delete", ted.Delete.String())
	assert.Equal(t, "op(9)", ted.Op(9).String())
}
