// Package hilbert2d provides the classical 2-dimensional Hilbert curve as a
// spatial.CurveRule. Its rule graph has exactly four states, generated by
// the group {identity, transpose, point-reflection, transpose∘point-reflection}
// acting on the identity curve's base traversal order — the same structure
// used by most production 2-D Hilbert implementations, just expressed here
// as an explicit finite rule graph rather than a closed-form bit formula
// (contrast FastIndexXY, a separate closed-form formula with its own
// orientation convention that this graph is not checked against).
package hilbert2d

import "github.com/sofwerx/spatial"

type orientation int

const (
	orientE  orientation = iota // identity
	orientT                     // transpose (swap x and y)
	orientR                     // point reflection (flip both axes)
	orientTR                    // transpose composed with point reflection
)

func (o orientation) String() string {
	switch o {
	case orientE:
		return "E"
	case orientT:
		return "T"
	case orientR:
		return "R"
	case orientTR:
		return "TR"
	default:
		return "?"
	}
}

// npointTable[o] is the traversal-order -> n-point permutation for
// orientation o: the base curve's order [0,1,3,2] (bottom-left, top-left,
// top-right, bottom-right) with the group element applied to each n-point.
var npointTable = [4][4]int{
	orientE:  {0, 1, 3, 2},
	orientT:  {0, 2, 3, 1},
	orientR:  {3, 2, 0, 1},
	orientTR: {3, 1, 0, 2},
}

// childTable[o][slot] is the orientation to recurse into when visiting slot
// (in traversal order) under orientation o.
var childTable = [4][4]orientation{
	orientE:  {orientT, orientE, orientE, orientTR},
	orientT:  {orientE, orientT, orientT, orientR},
	orientR:  {orientTR, orientR, orientR, orientT},
	orientTR: {orientR, orientTR, orientTR, orientE},
}

type rule struct {
	orientation orientation
}

var rules = [4]*rule{
	orientE:  {orientation: orientE},
	orientT:  {orientation: orientT},
	orientR:  {orientation: orientR},
	orientTR: {orientation: orientTR},
}

// Root returns the canonical root orientation of the 2-D Hilbert curve,
// starting at the origin corner.
func Root() spatial.CurveRule { return rules[orientE] }

func (r *rule) Dimension() int { return 2 }

func (r *rule) NPointValues() []int {
	values := npointTable[r.orientation]
	return values[:]
}

func (r *rule) NPointForIndex(i int) int { return npointTable[r.orientation][i] }

func (r *rule) IndexForNPoint(p int) int {
	for i, v := range npointTable[r.orientation] {
		if v == p {
			return i
		}
	}
	return -1
}

func (r *rule) ChildAt(slot int) spatial.CurveRule {
	return rules[childTable[r.orientation][slot]]
}

func (r *rule) Name() string { return "hilbert2d-" + r.orientation.String() }
