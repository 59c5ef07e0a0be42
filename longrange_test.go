package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongRangeEqual(t *testing.T) {
	require.True(t, LongRange{Min: 1, Max: 2}.Equal(LongRange{Min: 1, Max: 2}))
	require.False(t, LongRange{Min: 1, Max: 2}.Equal(LongRange{Min: 1, Max: 3}))
}

func TestIntervalBuilderCoalescesAdjacentTiles(t *testing.T) {
	b := &intervalBuilder{}
	for _, key := range []uint64{0, 1, 2, 5, 6, 10} {
		b.addTile(key)
	}
	require.Equal(t, []LongRange{
		{Min: 0, Max: 2},
		{Min: 5, Max: 6},
		{Min: 10, Max: 10},
	}, b.build())
}

func TestIntervalBuilderEmpty(t *testing.T) {
	b := &intervalBuilder{}
	require.Equal(t, []LongRange{}, b.build())
}
