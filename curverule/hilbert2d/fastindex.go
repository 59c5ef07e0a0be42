package hilbert2d

// FastIndexXY computes the 2-D Hilbert curve index of (x, y) directly via
// bit manipulation, without going through the CurveRule/Curve machinery.
// level is the number of bits of precision per axis (1..16); x and y must
// fit in that many bits. This is useful for bulk-presorting large point
// sets by Hilbert locality before feeding them through the engine — the
// same role this formula played in sorting bounding boxes before packing
// them into a tree — where constructing a Curve per point would be
// wasteful.
//
// Adapted from the public-domain interleaved-bit formula at
// https://github.com/rawrunprotected/hilbert_curves.
func FastIndexXY(level uint8, x, y uint32) uint32 {
	n := uint32(level)
	x <<= 16 - n
	y <<= 16 - n

	var a, b, c, d uint32

	{
		a0 := x ^ y
		b0 := 0xFFFF ^ a0
		c0 := 0xFFFF ^ (x | y)
		d0 := x & (y ^ 0xFFFF)

		a = a0 | (b0 >> 1)
		b = (a0 >> 1) ^ a0
		c = ((c0 >> 1) ^ (b0 & (d0 >> 1))) ^ c0
		d = ((a0 & (c0 >> 1)) ^ (d0 >> 1)) ^ d0
	}

	for _, shift := range []uint32{2, 4} {
		pa, pb, pc, pd := a, b, c, d
		a = (pa & (pa >> shift)) ^ (pb & (pb >> shift))
		b = (pa & (pb >> shift)) ^ (pb & ((pa ^ pb) >> shift))
		c ^= (pa & (pc >> shift)) ^ (pb & (pd >> shift))
		d ^= (pb & (pc >> shift)) ^ ((pa ^ pb) & (pd >> shift))
	}

	{
		pa, pb, pc, pd := a, b, c, d
		c ^= (pa & (pc >> 8)) ^ (pb & (pd >> 8))
		d ^= (pb & (pc >> 8)) ^ ((pa ^ pb) & (pd >> 8))
	}

	ua := c ^ (c >> 1)
	ub := d ^ (d >> 1)

	i0 := x ^ y
	i1 := ub | (0xFFFF ^ (i0 | ua))

	return (interleaveBits(i1)<<1 | interleaveBits(i0)) >> (32 - 2*n)
}

// interleaveBits spreads the low 16 bits of x into the even bit positions
// of a 32-bit result, so two interleaved calls produce a Morton code.
func interleaveBits(x uint32) uint32 {
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}
