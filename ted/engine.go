package ted

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// Back-pointers of the E table.
const (
	eAlignRoots uint8 = iota + 1 // i=s and j=t: the pair (s,t) itself
	eDelete                      // i is unaligned
	eInsert                      // j is unaligned
	eSkipSource                  // x, the child of u towards i, is unaligned
	eSkipTarget                  // y, the child of v towards j, is unaligned
	eAlignChild                  // x is aligned with y
)

// Back-pointers of the D table.
const (
	dMatch uint8 = iota + 1
	dDelete
	dInsert
)

// engine owns the three tables of one Diff call.
type engine struct {
	a, b *side
	cost CostFunc

	// del[i], ins[j] and rel[i*(b.size+1)+j] are the cached edit costs.
	del []int
	ins []int
	rel []int

	// e and eWhy are indexed by ka*b.keys+kb.
	e    []int
	eWhy []uint8

	// minM, mS, mT, d and dWhy are indexed by i*(b.size+1)+j; mS and mT hold
	// the depths of the winning (s,t) pair.
	minM []int
	mS   []int32
	mT   []int32
	d    []int
	dWhy []uint8
}

// Diff computes the minimum edit cost of turning a into b and one mapping
// achieving it, sorted by SortMapping.
//
// Both trees are indexed (and therefore frozen) by the call. Every aligned
// pair, the two roots included, contributes its relabel cost to Cost, so
// Cost is the sum of the costs of the returned mapping.
//
// Errors:
//   - ErrNilTree   if a or b is nil.
//   - ErrTooLarge  if the E table would exceed Options.MaxCells.
//
// Complexity: O(|a|·|b|·depth(a)²·depth(b)²) time and memory.
func Diff(a, b *tree.Tree, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if a == nil || b == nil {
		return nil, ErrNilTree
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Index both trees
	sa, err := newSide(a)
	if err != nil {
		return nil, fmt.Errorf("ted: source: %w", err)
	}
	sb, err := newSide(b)
	if err != nil {
		return nil, fmt.Errorf("ted: target: %w", err)
	}

	// 4. Guard the E allocation
	if o.MaxCells > 0 && sa.keys > o.MaxCells/sb.keys {
		return nil, fmt.Errorf("ted: %d×%d keys, limit %d: %w", sa.keys, sb.keys, o.MaxCells, ErrTooLarge)
	}

	// 5. Fill E, then MIN_M, then D
	en := newEngine(sa, sb, o.Cost)
	en.fillE()
	en.fillMinM()
	en.fillD()

	res := &Result{
		Cost:    en.d[en.at(sa.size, sb.size)],
		Mapping: en.mapping(),
	}
	SortMapping(res.Mapping)

	o.Logger.Debug("ted: diff computed",
		"sourceSize", sa.size,
		"targetSize", sb.size,
		"eCells", sa.keys*sb.keys,
		"cost", res.Cost,
		"pairs", len(res.Mapping),
	)

	return res, nil
}

func newEngine(a, b *side, cost CostFunc) *engine {
	en := &engine{
		a:    a,
		b:    b,
		cost: cost,
		del:  make([]int, a.size+1),
		ins:  make([]int, b.size+1),
		rel:  make([]int, (a.size+1)*(b.size+1)),
		e:    make([]int, a.keys*b.keys),
		eWhy: make([]uint8, a.keys*b.keys),
		minM: make([]int, (a.size+1)*(b.size+1)),
		mS:   make([]int32, (a.size+1)*(b.size+1)),
		mT:   make([]int32, (a.size+1)*(b.size+1)),
		d:    make([]int, (a.size+1)*(b.size+1)),
		dWhy: make([]uint8, (a.size+1)*(b.size+1)),
	}

	for i := 1; i <= a.size; i++ {
		en.del[i] = cost(a.label(i), nil)
	}
	for j := 1; j <= b.size; j++ {
		en.ins[j] = cost(nil, b.label(j))
	}
	for i := 1; i <= a.size; i++ {
		for j := 1; j <= b.size; j++ {
			en.rel[en.at(i, j)] = cost(a.label(i), b.label(j))
		}
	}

	return en
}

// at indexes the (i,j) tables.
func (en *engine) at(i, j int) int { return i*(en.b.size+1) + j }

// cell indexes E.
func (en *engine) cell(ka, kb int) int { return ka*en.b.keys + kb }

// fillE computes E(s,u,i,t,v,j) for every key pair.
//
// Order: i ascending, j ascending, then the depths of s, u, t and v
// descending. Every case reads either a smaller i or j, a deeper u or v
// with the same s and t, or a deeper s and t, all of which come earlier.
func (en *engine) fillE() {
	a, b := en.a, en.b
	for i := 1; i <= a.size; i++ {
		di := a.depth[i]
		for j := 1; j <= b.size; j++ {
			dj := b.depth[j]
			for ds := di; ds >= 0; ds-- {
				for du := di; du >= ds; du-- {
					ka := a.key(i, ds, du)
					for dt := dj; dt >= 0; dt-- {
						for dv := dj; dv >= dt; dv-- {
							kb := b.key(j, dt, dv)
							c := en.cell(ka, kb)
							en.e[c], en.eWhy[c] = en.caseE(i, ds, du, ka, j, dt, dv, kb)
						}
					}
				}
			}
		}
	}
}

// caseE evaluates one E cell from already computed cells.
func (en *engine) caseE(i, ds, du, ka, j, dt, dv, kb int) (int, uint8) {
	a, b := en.a, en.b
	di, dj := a.depth[i], b.depth[j]

	switch {
	// Both forests are down to their roots s and t.
	case ds == di && dt == dj:
		return en.rel[en.at(i, j)], eAlignRoots

	// Source is just s: every remaining target node is inserted.
	case ds == di:
		return en.e[en.cell(ka, b.peel(j, dt, dv))] + en.ins[j], eInsert

	// Target is just t: every remaining source node is deleted.
	case dt == dj:
		return en.e[en.cell(a.peel(i, ds, du), kb)] + en.del[i], eDelete

	// i lies on the unaligned path.
	case du == di:
		return en.e[en.cell(a.peel(i, ds, du), kb)] + en.del[i], eDelete

	// j lies on the unaligned path.
	case dv == dj:
		return en.e[en.cell(ka, b.peel(j, dt, dv))] + en.ins[j], eInsert
	}

	// x and y are the children of u and v on the paths towards i and j.
	x, y := a.chain[i][du+1], b.chain[j][dv+1]

	best := en.e[en.cell(a.key(x-1, ds, du), b.key(y-1, dt, dv))] +
		en.e[en.cell(a.key(i, du+1, du+1), b.key(j, dv+1, dv+1))]
	why := eAlignChild

	if c := en.e[en.cell(a.key(i, ds, du+1), kb)]; c < best {
		best, why = c, eSkipSource
	}
	if c := en.e[en.cell(ka, b.key(j, dt, dv+1))]; c < best {
		best, why = c, eSkipTarget
	}

	return best, why
}

// fillMinM computes MIN_M(i,j) for every (i,j).
func (en *engine) fillMinM() {
	a, b := en.a, en.b

	// Prefix sums for the boundary rows.
	delPrefix := make([]int, a.size+1)
	for i := 1; i <= a.size; i++ {
		delPrefix[i] = delPrefix[i-1] + en.del[i]
	}
	insPrefix := make([]int, b.size+1)
	for j := 1; j <= b.size; j++ {
		insPrefix[j] = insPrefix[j-1] + en.ins[j]
	}

	for i := 1; i <= a.size; i++ {
		di := a.depth[i]
		for j := 1; j <= b.size; j++ {
			dj := b.depth[j]
			c := en.at(i, j)
			en.mS[c], en.mT[c] = -1, -1

			switch {
			case i == 1 && j == 1:
				en.minM[c] = en.rel[c]
				continue
			case i == 1:
				en.minM[c] = en.rel[c] + insPrefix[j-1]
				continue
			case j == 1:
				en.minM[c] = en.rel[c] + delPrefix[i-1]
				continue
			}

			// (s,t) ranges over the ancestor paths of father(i) and
			// father(j), nearest first; the first strict minimum wins.
			best, bestS, bestT := 0, -1, -1
			for ds := di - 1; ds >= 0; ds-- {
				s := a.chain[i][ds]
				ka := a.key(i-1, ds, di-1)
				for dt := dj - 1; dt >= 0; dt-- {
					t := b.chain[j][dt]
					kb := b.key(j-1, dt, dj-1)
					v := en.minM[en.at(s, t)] + en.e[en.cell(ka, kb)] - en.rel[en.at(s, t)]
					if bestS < 0 || v < best {
						best, bestS, bestT = v, ds, dt
					}
				}
			}

			en.minM[c] = best + en.rel[c]
			en.mS[c], en.mT[c] = int32(bestS), int32(bestT)
		}
	}
}

// fillD computes the prefix distance D(i,j) for every (i,j).
func (en *engine) fillD() {
	a, b := en.a, en.b
	for i := 1; i <= a.size; i++ {
		for j := 1; j <= b.size; j++ {
			c := en.at(i, j)
			switch {
			case i == 1 && j == 1:
				en.d[c], en.dWhy[c] = en.rel[c], dMatch

			// Boundary rows extend the deletion (insertion) chain unless
			// aligning i (or j) with the other root is strictly cheaper.
			case j == 1:
				en.d[c], en.dWhy[c] = en.d[en.at(i-1, j)]+en.del[i], dDelete
				if en.minM[c] < en.d[c] {
					en.d[c], en.dWhy[c] = en.minM[c], dMatch
				}
			case i == 1:
				en.d[c], en.dWhy[c] = en.d[en.at(i, j-1)]+en.ins[j], dInsert
				if en.minM[c] < en.d[c] {
					en.d[c], en.dWhy[c] = en.minM[c], dMatch
				}
			default:
				best, why := en.minM[c], dMatch
				if v := en.d[en.at(i-1, j)] + en.del[i]; v < best {
					best, why = v, dDelete
				}
				if v := en.d[en.at(i, j-1)] + en.ins[j]; v < best {
					best, why = v, dInsert
				}
				en.d[c], en.dWhy[c] = best, why
			}
		}
	}
}
