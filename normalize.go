package spatial

// normalize maps a real coordinate into this curve's fixed-precision
// integer space [0, width) per dimension, clamping silently to the
// envelope. This never fails: callers needing strict bounds checking must
// check externally before calling it.
func (c *Curve) normalize(coord []float64) []uint64 {
	norm := make([]uint64, c.dimension)
	for dim := 0; dim < c.dimension; dim++ {
		min := c.envelope.Min(dim)
		max := c.envelope.Max(dim)
		v := clamp(coord[dim], min, max)
		if v == max {
			norm[dim] = c.width - 1
			continue
		}
		norm[dim] = uint64((v - min) * c.scalingFactor[dim])
	}
	return norm
}

// denormalize maps a normalized coordinate at level back to the real-valued
// center of the tile it identifies, clamped to the envelope.
func (c *Curve) denormalize(norm []uint64, level int) []float64 {
	coord := make([]float64, c.dimension)
	for dim := 0; dim < c.dimension; dim++ {
		min := c.envelope.Min(dim)
		max := c.envelope.Max(dim)
		value := float64(norm[dim])/c.scalingFactor[dim] + min + c.TileWidth(dim, level)/2
		coord[dim] = clamp(value, min, max)
	}
	return coord
}

func clamp(v, min, max float64) float64 {
	if v <= min {
		return min
	}
	if v >= max {
		return max
	}
	return v
}
