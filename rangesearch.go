package spatial

// TilesIntersecting returns the minimal sorted, maximally coalesced, disjoint
// list of closed key intervals whose union is exactly the set of level-L
// tile keys whose tile intersects query. Coordinates outside the curve's own
// envelope are clamped during normalization, so a query partly or entirely
// outside the envelope still returns a correct (possibly empty) result
// rather than failing.
func (c *Curve) TilesIntersecting(query Envelope) ([]LongRange, error) {
	search := normalizeEnvelope(c, query)
	builder := &intervalBuilder{}

	extent := newSearchEnvelopeCube(0, c.width, c.dimension)
	c.tilesIntersectingAt(search, extent, c.root, 0, c.valueWidth, builder)

	return builder.build(), nil
}

// tilesIntersectingAt is the recursive quadrant-pruning walk. curve, extent
// and [left, right) are three synchronized cursors over the same subtree:
// the current rule orientation, the normalized box that subtree covers, and
// the half-open key span it occupies. Slots are visited in the curve's own
// traversal order (0..quadFactor-1), which is precisely the order keys
// increase in, so the builder's greedy append-or-extend produces the
// coalesced form in a single pass.
func (c *Curve) tilesIntersectingAt(search, extent searchEnvelope, curve CurveRule, left, right uint64, builder *intervalBuilder) {
	if right-left == 1 {
		coord, err := c.NormalizedCoordinateFor(left, c.maxLevel)
		if err != nil {
			// left is always a valid level-L key by construction.
			panic(err)
		}
		if search.contains(coord) {
			builder.addTile(left)
		}
		return
	}

	if !search.intersects(extent) {
		return
	}

	span := (right - left) / uint64(c.quadFactor)
	for i := 0; i < c.quadFactor; i++ {
		npoint := curve.NPointForIndex(i)
		childExtent := extent.quadrant(bitValues(npoint, c.dimension))
		c.tilesIntersectingAt(search, childExtent, curve.ChildAt(i), left+uint64(i)*span, left+uint64(i+1)*span, builder)
	}
}
