package spatial

// LongRange is a closed interval [Min, Max] of keys, with Min <= Max.
//
// Values returned from TilesIntersecting are sealed: the interval list is
// built internally by intervalBuilder, which is the only thing permitted to
// grow the last range's Max while a search is in progress. Once a search
// returns, callers hold plain values, not a mutable handle into the result.
type LongRange struct {
	Min uint64
	Max uint64
}

// Equal reports whether two ranges describe the same closed interval.
func (r LongRange) Equal(other LongRange) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// intervalBuilder accumulates level-L tile keys into a sorted, maximally
// coalesced list of LongRange values. Keys must be added in increasing
// order — which tilesIntersectingAt guarantees, since it walks the curve in
// its own traversal order, the same order in which keys increase.
type intervalBuilder struct {
	ranges []LongRange
}

// addTile appends key to the interval list, extending the last interval in
// place if key is contiguous with it.
func (b *intervalBuilder) addTile(key uint64) {
	if n := len(b.ranges); n > 0 && b.ranges[n-1].Max == key-1 {
		b.ranges[n-1].Max = key
		return
	}
	b.ranges = append(b.ranges, LongRange{Min: key, Max: key})
}

// build seals the accumulated ranges. The builder must not be reused after
// calling build.
func (b *intervalBuilder) build() []LongRange {
	if b.ranges == nil {
		return []LongRange{}
	}
	return b.ranges
}
