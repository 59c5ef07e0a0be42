package spatial

// DerivedValueFor returns coord's key at the curve's maximum level.
func (c *Curve) DerivedValueFor(coord []float64) (uint64, error) {
	return c.DerivedValueForLevel(coord, c.maxLevel)
}

// DerivedValueForLevel returns coord's key at the given, possibly coarser,
// level: keys at coarser levels are prefixes of the level-L key, left-shifted
// to occupy the same bit positions a level-L key would. It fails with
// ErrInvalidLevel when level is outside [1, MaxLevel()].
func (c *Curve) DerivedValueForLevel(coord []float64, level int) (uint64, error) {
	if err := c.assertValidLevel(level); err != nil {
		return 0, err
	}
	norm := c.normalize(coord)

	var key uint64
	mask := uint64(1) << uint(c.maxLevel-1)
	rule := c.root

	for i := 1; i <= level; i++ {
		bitIndex := uint(c.maxLevel - i)
		npoint := 0
		for dim := 0; dim < c.dimension; dim++ {
			npoint = npoint<<1 | int((norm[dim]&mask)>>bitIndex)
		}

		slot := rule.IndexForNPoint(npoint)
		key = key<<uint(c.dimension) | uint64(slot)
		mask >>= 1
		rule = rule.ChildAt(slot)
	}

	if level < c.maxLevel {
		key <<= uint(c.dimension * (c.maxLevel - level))
	}
	return key, nil
}

// NormalizedCoordinateFor decodes key at level back into this curve's
// normalized integer coordinate space. It fails with ErrInvalidLevel when
// level is outside [1, MaxLevel()].
func (c *Curve) NormalizedCoordinateFor(key uint64, level int) ([]uint64, error) {
	if err := c.assertValidLevel(level); err != nil {
		return nil, err
	}

	mask := c.initialNormMask
	coordinate := make([]uint64, c.dimension)
	rule := c.root

	for i := 1; i <= level; i++ {
		bitIndex := uint(c.maxLevel-i) * uint(c.dimension)
		slot := int((key & mask) >> bitIndex)
		npoint := rule.NPointForIndex(slot)
		bits := bitValues(npoint, c.dimension)

		for dim := 0; dim < c.dimension; dim++ {
			coordinate[dim] = coordinate[dim]<<1 | uint64(bits[dim])
		}

		mask >>= uint(c.dimension)
		rule = rule.ChildAt(slot)
	}

	if level < c.maxLevel {
		shift := uint(c.maxLevel - level)
		for dim := 0; dim < c.dimension; dim++ {
			coordinate[dim] <<= shift
		}
	}
	return coordinate, nil
}

// CenterPointFor returns the real-coordinate center of the tile key
// identifies at the curve's maximum level.
func (c *Curve) CenterPointFor(key uint64) ([]float64, error) {
	return c.CenterPointForLevel(key, c.maxLevel)
}

// CenterPointForLevel returns the real-coordinate center of the tile key
// identifies at level. It fails with ErrInvalidLevel when level is outside
// [1, MaxLevel()].
func (c *Curve) CenterPointForLevel(key uint64, level int) ([]float64, error) {
	norm, err := c.NormalizedCoordinateFor(key, level)
	if err != nil {
		return nil, err
	}
	return c.denormalize(norm, level), nil
}
