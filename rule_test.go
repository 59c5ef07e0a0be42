package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// loopRule is a minimal, cyclic two-dimensional CurveRule used to exercise
// validateRule's cycle handling: every slot recurses back into itself.
type loopRule struct{}

func (loopRule) Dimension() int { return 2 }
func (loopRule) NPointValues() []int { return []int{0, 1, 2, 3} }
func (loopRule) NPointForIndex(i int) int { return []int{0, 1, 2, 3}[i] }
func (loopRule) IndexForNPoint(p int) int { return p }
func (loopRule) ChildAt(int) CurveRule { return loopRule{} }
func (loopRule) Name() string { return "loop" }

type badPermutationRule struct{}

func (badPermutationRule) Dimension() int      { return 2 }
func (badPermutationRule) NPointValues() []int { return []int{0, 0, 2, 3} }
func (badPermutationRule) NPointForIndex(i int) int {
	return []int{0, 0, 2, 3}[i]
}
func (badPermutationRule) IndexForNPoint(p int) int { return p }
func (badPermutationRule) ChildAt(int) CurveRule    { return badPermutationRule{} }
func (badPermutationRule) Name() string             { return "bad" }

type wrongDimensionChildRule struct {
	dim int
}

func (r wrongDimensionChildRule) Dimension() int      { return r.dim }
func (r wrongDimensionChildRule) NPointValues() []int { return identityPermutation(r.dim) }
func (r wrongDimensionChildRule) NPointForIndex(i int) int {
	return identityPermutation(r.dim)[i]
}
func (r wrongDimensionChildRule) IndexForNPoint(p int) int { return p }
func (r wrongDimensionChildRule) ChildAt(int) CurveRule {
	return wrongDimensionChildRule{dim: r.dim + 1}
}
func (r wrongDimensionChildRule) Name() string {
	if r.dim == 2 {
		return "wrongdim-root"
	}
	return "wrongdim-child"
}

func identityPermutation(dim int) []int {
	values := make([]int, 1<<dim)
	for i := range values {
		values[i] = i
	}
	return values
}

func TestValidateRuleAcceptsCycles(t *testing.T) {
	require.NoError(t, validateRule(loopRule{}, 2))
}

func TestValidateRuleRejectsNonPermutation(t *testing.T) {
	err := validateRule(badPermutationRule{}, 2)
	require.ErrorIs(t, err, ErrMalformedRule)
}

func TestValidateRuleRejectsDimensionMismatch(t *testing.T) {
	err := validateRule(wrongDimensionChildRule{dim: 2}, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBitValues(t *testing.T) {
	require.Equal(t, []int{0, 0}, bitValues(0, 2))
	require.Equal(t, []int{0, 1}, bitValues(1, 2))
	require.Equal(t, []int{1, 0}, bitValues(2, 2))
	require.Equal(t, []int{1, 1}, bitValues(3, 2))
	require.Equal(t, []int{1, 0, 1}, bitValues(5, 3))
}
