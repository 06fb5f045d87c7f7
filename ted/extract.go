package ted

import (
	"math"
	"slices"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// mapping reads the winning mapping of D(|A|,|B|) from the back-pointers.
func (en *engine) mapping() []Pair {
	out := make([]Pair, 0, en.a.size+en.b.size)

	i, j := en.a.size, en.b.size
	for {
		switch en.dWhy[en.at(i, j)] {
		case dDelete:
			out = append(out, Pair{From: i, To: tree.None})
			i--
		case dInsert:
			out = append(out, Pair{From: tree.None, To: j})
			j--
		default:
			return en.appendMinM(out, i, j)
		}
	}
}

// appendMinM appends the mapping of MIN_M(i,j): the pair (i,j), the E
// mapping between (s,t) and (i,j), and recursively MIN_M(s,t).
func (en *engine) appendMinM(out []Pair, i, j int) []Pair {
	a, b := en.a, en.b
	for {
		switch {
		case i == 1 && j == 1:
			return append(out, Pair{From: 1, To: 1})
		case i == 1:
			out = append(out, Pair{From: 1, To: j})
			for y := 1; y < j; y++ {
				out = append(out, Pair{From: tree.None, To: y})
			}

			return out
		case j == 1:
			out = append(out, Pair{From: i, To: 1})
			for x := 1; x < i; x++ {
				out = append(out, Pair{From: x, To: tree.None})
			}

			return out
		}

		c := en.at(i, j)
		ds, dt := int(en.mS[c]), int(en.mT[c])
		s, t := a.chain[i][ds], b.chain[j][dt]

		out = append(out, Pair{From: i, To: j})
		// (s,t) is emitted by MIN_M(s,t) on the next iteration.
		out = en.appendE(out, a.key(i-1, ds, a.depth[i]-1), b.key(j-1, dt, b.depth[j]-1), Pair{From: s, To: t})
		i, j = s, t
	}
}

// appendE appends the mapping of the E cell (ka,kb), leaving out skip.
func (en *engine) appendE(out []Pair, ka, kb int, skip Pair) []Pair {
	a, b := en.a, en.b

	stack := [][2]int{{ka, kb}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ca, cb := top[0], top[1]

		i, ds, du := a.keyNode[ca], a.keyS[ca], a.keyU[ca]
		j, dt, dv := b.keyNode[cb], b.keyS[cb], b.keyU[cb]

		switch en.eWhy[en.cell(ca, cb)] {
		case eAlignRoots:
			if p := (Pair{From: i, To: j}); p != skip {
				out = append(out, p)
			}
		case eDelete:
			out = append(out, Pair{From: i, To: tree.None})
			stack = append(stack, [2]int{a.peel(i, ds, du), cb})
		case eInsert:
			out = append(out, Pair{From: tree.None, To: j})
			stack = append(stack, [2]int{ca, b.peel(j, dt, dv)})
		case eSkipSource:
			stack = append(stack, [2]int{a.key(i, ds, du+1), cb})
		case eSkipTarget:
			stack = append(stack, [2]int{ca, b.key(j, dt, dv+1)})
		case eAlignChild:
			x, y := a.chain[i][du+1], b.chain[j][dv+1]
			stack = append(stack,
				[2]int{a.key(x-1, ds, du), b.key(y-1, dt, dv)},
				[2]int{a.key(i, du+1, du+1), b.key(j, dv+1, dv+1)},
			)
		}
	}

	return out
}

// rank orders positions with tree.None after every real position.
func rank(p int) int {
	if absent(p) {
		return math.MaxInt
	}

	return p
}

// Less orders pairs by source position, then target position, with absent
// positions after every real one.
func Less(x, y Pair) bool {
	return Compare(x, y) < 0
}

// Compare returns -1, 0 or +1 following the order of Less.
func Compare(x, y Pair) int {
	switch rx, ry := rank(x.From), rank(y.From); {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	}
	switch rx, ry := rank(x.To), rank(y.To); {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	}

	return 0
}

// SortMapping sorts m in place by Compare.
func SortMapping(m []Pair) {
	slices.SortFunc(m, Compare)
}
