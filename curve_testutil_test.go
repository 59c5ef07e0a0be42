package spatial

import "fmt"

// testIdentityRule is a trivial Z-order-shaped CurveRule used by internal
// (package spatial) tests that need *some* valid rule to construct a Curve
// but aren't testing curve-specific geometry. The built-in curverule
// packages import this package, so tests living inside package spatial
// cannot import them back without an import cycle — external tests
// (package spatial_test) use the real hilbert2d rule instead.
type testIdentityRule struct {
	dimension int
}

func testRootRule(dimension int) (CurveRule, error) {
	if dimension < 1 || dimension > 3 {
		return nil, fmt.Errorf("testIdentityRule: dimension %d outside [1,3]", dimension)
	}
	return testIdentityRule{dimension: dimension}, nil
}

func (r testIdentityRule) Dimension() int { return r.dimension }

func (r testIdentityRule) NPointValues() []int {
	values := make([]int, 1<<r.dimension)
	for i := range values {
		values[i] = i
	}
	return values
}

func (r testIdentityRule) NPointForIndex(i int) int { return i }

func (r testIdentityRule) IndexForNPoint(p int) int { return p }

func (r testIdentityRule) ChildAt(int) CurveRule { return r }

func (r testIdentityRule) Name() string { return fmt.Sprintf("test-identity-%d", r.dimension) }
