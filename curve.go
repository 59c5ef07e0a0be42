package spatial

import "fmt"

// Curve is a space-filling curve index over a fixed envelope and maximum
// level. It is immutable after New returns and safe for unbounded concurrent
// reads: every derived constant and the rule graph are read-only, and its
// methods allocate only caller-local state.
type Curve struct {
	envelope  Envelope
	dimension int
	maxLevel  int
	root      CurveRule

	width           uint64
	valueWidth      uint64
	quadFactor      int
	initialNormMask uint64
	scalingFactor   []float64
}

// New constructs a Curve over envelope, descending root to at most maxLevel
// levels. It fails with ErrInvalidArgument when maxLevel < 1, when
// envelope.Dimension() > 3, when root's dimension doesn't match envelope's,
// or when maxLevel*envelope.Dimension() exceeds 63 (the key would not fit in
// a 64-bit unsigned integer; the source this was distilled from leaves this
// case undefined, so it is rejected here rather than guessed at), or when
// envelope has a non-positive width on some axis. It fails
// with ErrMalformedRule if any rule reachable from root has NPointValues
// that isn't a permutation of [0, 2^dimension).
func New(envelope Envelope, maxLevel int, root CurveRule) (*Curve, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: maxLevel %d must be >= 1", ErrInvalidArgument, maxLevel)
	}
	dimension := envelope.Dimension()
	if dimension < 1 || dimension > 3 {
		return nil, fmt.Errorf("%w: dimension %d outside [1,3]", ErrInvalidArgument, dimension)
	}
	if root.Dimension() != dimension {
		return nil, fmt.Errorf("%w: root rule dimension %d does not match envelope dimension %d", ErrInvalidArgument, root.Dimension(), dimension)
	}
	if maxLevel*dimension > 63 {
		return nil, fmt.Errorf("%w: maxLevel %d * dimension %d exceeds 63 bits", ErrInvalidArgument, maxLevel, dimension)
	}
	if err := validateRule(root, dimension); err != nil {
		return nil, err
	}

	width := uint64(1) << maxLevel
	scalingFactor := make([]float64, dimension)
	for dim := 0; dim < dimension; dim++ {
		w := envelope.Width(dim)
		if w <= 0 {
			return nil, fmt.Errorf("%w: dim %d has non-positive width %v", ErrInvalidArgument, dim, w)
		}
		scalingFactor[dim] = float64(width) / w
	}

	c := &Curve{
		envelope:        envelope,
		dimension:       dimension,
		maxLevel:        maxLevel,
		root:            root,
		width:           width,
		valueWidth:      uint64(1) << uint(maxLevel*dimension),
		quadFactor:      1 << dimension,
		initialNormMask: ((uint64(1) << dimension) - 1) << uint((maxLevel-1)*dimension),
		scalingFactor:   scalingFactor,
	}
	return c, nil
}

// MaxLevel returns the curve's maximum (finest) level L.
func (c *Curve) MaxLevel() int { return c.maxLevel }

// Width returns 2^L, the per-dimension discrete extent at the finest level.
func (c *Curve) Width() uint64 { return c.width }

// ValueWidth returns 2^(L*d), the exclusive upper bound of keys at the
// finest level.
func (c *Curve) ValueWidth() uint64 { return c.valueWidth }

// Range returns the envelope this curve was constructed over.
func (c *Curve) Range() Envelope { return c.envelope }

// Dimension returns the number of axes this curve indexes.
func (c *Curve) Dimension() int { return c.dimension }

// TileWidth returns the real-coordinate width of a tile on dim at level.
func (c *Curve) TileWidth(dim, level int) float64 {
	return c.envelope.Width(dim) / float64(uint64(1)<<uint(level))
}

func (c *Curve) assertValidLevel(level int) error {
	if level < 1 || level > c.maxLevel {
		return fmt.Errorf("%w: level %d outside [1,%d]", ErrInvalidLevel, level, c.maxLevel)
	}
	return nil
}
