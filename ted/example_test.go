package ted_test

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/ted"
	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// ExampleDiff compares A→B→D with A→(B, C→D).
func ExampleDiff() {
	one := tree.NewNode("A")
	one.Add("B").Add("D")

	two := tree.NewNode("A")
	two.Add("B")
	two.Add("C").Add("D")

	a, _ := tree.New(one)
	b, _ := tree.New(two)

	res, err := ted.Diff(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", res.Cost)
	lines, _ := ted.Describe(a, b, res.Mapping)
	for _, l := range lines {
		fmt.Println(l)
	}
	// Output:
	// cost: 2
	// No change for A (@1 and @1)
	// Change from B (@2) to C (@3)
	// No change for D (@3 and @4)
	// Insert B (@2)
}

// ExampleWithCostFunc makes relabeling as expensive as a delete plus an insert.
func ExampleWithCostFunc() {
	root := tree.NewNode("doc")
	root.Add("title")
	a, _ := tree.New(root)

	root = tree.NewNode("doc")
	root.Add("heading")
	b, _ := tree.New(root)

	double := func(from, to *string) int {
		if from != nil && to != nil && *from != *to {
			return 2
		}
		return ted.UnitCost(from, to)
	}

	res, _ := ted.Diff(a, b, ted.WithCostFunc(double))
	fmt.Println("cost:", res.Cost)
	// Output:
	// cost: 2
}
