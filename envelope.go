package spatial

import "fmt"

// Envelope is an axis-aligned box in up to three dimensions. Implementations
// must be immutable and must satisfy Max(dim) >= Min(dim) for every
// dim in [0, Dimension()).
//
// This is the interface the engine consumes; callers with their own box type
// (e.g. one shared with a geometry library) can implement it directly instead
// of converting to Box.
type Envelope interface {
	Dimension() int
	Min(dim int) float64
	Max(dim int) float64
	Width(dim int) float64
}

// Box is a concrete, immutable Envelope implementation for callers that have
// no box type of their own.
type Box struct {
	mins []float64
	maxs []float64
}

// NewBox builds a Box from per-dimension minimum and maximum coordinates.
// mins and maxs must have equal, matching length in [1, 3], and every
// maxs[i] must be >= mins[i].
func NewBox(mins, maxs []float64) (*Box, error) {
	if len(mins) != len(maxs) {
		return nil, fmt.Errorf("%w: mins has %d dims, maxs has %d", ErrInvalidArgument, len(mins), len(maxs))
	}
	if len(mins) < 1 || len(mins) > 3 {
		return nil, fmt.Errorf("%w: dimension %d outside [1,3]", ErrInvalidArgument, len(mins))
	}
	for i := range mins {
		if maxs[i] < mins[i] {
			return nil, fmt.Errorf("%w: dim %d has max %v < min %v", ErrInvalidArgument, i, maxs[i], mins[i])
		}
	}
	b := &Box{
		mins: append([]float64(nil), mins...),
		maxs: append([]float64(nil), maxs...),
	}
	return b, nil
}

// NewCube builds a Box whose bounds are [lo, hi] on every one of dim axes.
func NewCube(lo, hi float64, dim int) (*Box, error) {
	mins := make([]float64, dim)
	maxs := make([]float64, dim)
	for i := range mins {
		mins[i] = lo
		maxs[i] = hi
	}
	return NewBox(mins, maxs)
}

func (b *Box) Dimension() int { return len(b.mins) }

func (b *Box) Min(dim int) float64 { return b.mins[dim] }

func (b *Box) Max(dim int) float64 { return b.maxs[dim] }

func (b *Box) Width(dim int) float64 { return b.maxs[dim] - b.mins[dim] }
