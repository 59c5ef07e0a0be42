// Package zorder provides a Z-order (Morton) CurveRule for 1, 2, and 3
// dimensions. Z-order has no orientation changes between levels: every
// quadrant is visited in plain binary-counting order, and recursing into a
// child reuses the very same rule.
package zorder

import (
	"fmt"

	"github.com/sofwerx/spatial"
)

// rule is the single Z-order orientation for a given dimension: traversal
// order and n-point are identical, and every child is the rule itself.
type rule struct {
	dimension int
	npoints   []int
}

// rules holds one pre-built, immutable rule per supported dimension, indexed
// by dimension. Built once at package init rather than lazily, so Rule never
// needs to guard a shared cache against concurrent first-use.
var rules = [4]*rule{}

func init() {
	for dimension := 1; dimension <= 3; dimension++ {
		length := 1 << dimension
		npoints := make([]int, length)
		for i := range npoints {
			npoints[i] = i
		}
		rules[dimension] = &rule{dimension: dimension, npoints: npoints}
	}
}

// Rule returns the Z-order CurveRule for the given dimension, which must be
// in [1,3]. The returned rule is immutable and safe to share across curves
// and goroutines.
func Rule(dimension int) (spatial.CurveRule, error) {
	if dimension < 1 || dimension > 3 {
		return nil, fmt.Errorf("zorder: dimension %d outside [1,3]", dimension)
	}
	return rules[dimension], nil
}

func (r *rule) Dimension() int { return r.dimension }

func (r *rule) NPointValues() []int { return r.npoints }

func (r *rule) NPointForIndex(i int) int { return r.npoints[i] }

func (r *rule) IndexForNPoint(p int) int { return p }

func (r *rule) ChildAt(int) spatial.CurveRule { return r }

func (r *rule) Name() string { return fmt.Sprintf("zorder%d", r.dimension) }
