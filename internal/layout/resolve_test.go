package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeeps(t *testing.T) {
	t.Parallel()

	small := Item{ID: "small", X: 6, Y: 4, W: 6, H: 3}
	large := Item{ID: "large", X: 0, Y: 4, W: 12, H: 4}
	upper := Item{ID: "upper", X: 0, Y: 0, W: 12, H: 5}

	tests := []struct {
		name string
		a, b Item
		p    pins
		want bool
	}{
		{"pinned beats larger", small, large, pins{"small": pinMoved}, true},
		{"more pinned wins", large, small, pins{"small": pinMoved, "large": pinTarget}, false},
		{"same row larger footprint stays", large, small, nil, true},
		{"same row smaller footprint moves", small, large, nil, false},
		{"upper item stays", upper, large, nil, true},
		{"pinned lower item stays", upper, large, pins{"large": pinMoved}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keeps(tt.a, tt.b, tt.p))
		})
	}
}

func TestKeeps_TieBreakIsAntisymmetric(t *testing.T) {
	t.Parallel()

	a := Item{ID: "a", X: 0, Y: 0, W: 4, H: 2}
	b := Item{ID: "b", X: 0, Y: 0, W: 2, H: 4}
	assert.NotEqual(t, keeps(a, b, nil), keeps(b, a, nil))
}

func TestResolveVertical_PushesDown(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "top", X: 0, Y: 0, W: 12, H: 4},
		{ID: "mid", X: 0, Y: 2, W: 6, H: 3},
		{ID: "side", X: 6, Y: 3, W: 6, H: 3},
	}
	require.True(t, resolveVertical(l, nil, 32))

	assert.Equal(t, 0, l[0].Y)
	assert.Equal(t, 4, l[1].Y)
	assert.Equal(t, 4, l[2].Y)
	assert.True(t, l.Settled())
}

func TestResolveVertical_PinnedHoldsRow(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "other", X: 0, Y: 0, W: 12, H: 4},
		{ID: "moved", X: 0, Y: 1, W: 12, H: 4},
	}
	require.True(t, resolveVertical(l, pins{"moved": pinMoved}, 32))

	assert.Equal(t, 1, l[1].Y, "pinned item keeps its row")
	assert.Equal(t, 5, l[0].Y)
}

func TestResolveVertical_SameRowSmallerMoves(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "feature", X: 6, Y: 7, W: 6, H: 3},
		{ID: "table", X: 0, Y: 7, W: 12, H: 4},
	}
	require.True(t, resolveVertical(l, nil, 32))

	assert.Equal(t, 11, l[0].Y)
	assert.Equal(t, 7, l[1].Y)
}

func TestResolveVertical_PassCap(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 4, H: 2},
		{ID: "b", X: 0, Y: 1, W: 4, H: 2},
		{ID: "c", X: 0, Y: 2, W: 4, H: 2},
	}
	assert.False(t, resolveVertical(l.Clone(), nil, 0), "no passes leaves overlaps")
	assert.True(t, resolveVertical(l, nil, 8))
}
