package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Layout
		pins pins
		want Layout
	}{
		{
			name: "already full row untouched",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
		},
		{
			name: "overfull row shrinks the most slack first",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 6, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
			// a has slack 3, b slack 5: b gives up all three columns, the
			// last one on a tie that goes to the rightmost item.
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 6, H: 4, MinW: 3},
				{ID: "b", X: 6, Y: 0, W: 6, H: 4, MinW: 4},
			},
		},
		{
			name: "leftover goes to last item even when pinned",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 4, H: 4, MinW: 4},
			},
			pins: pins{"b": pinMoved},
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
		},
		{
			name: "leftover goes to last unpinned item too",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 5, Y: 0, W: 4, H: 4, MinW: 4},
			},
			pins: pins{"a": pinMoved},
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
		},
		{
			name: "leftover goes to pinned item when alone",
			in: Layout{
				{ID: "a", X: 5, Y: 2, W: 3, H: 4, MinW: 3},
			},
			pins: pins{"a": pinMoved},
			want: Layout{
				{ID: "a", X: 0, Y: 2, W: 12, H: 4, MinW: 3},
			},
		},
		{
			name: "minimums exceed columns only normalises x",
			in: Layout{
				{ID: "a", X: 4, Y: 0, W: 8, H: 4, MinW: 8},
				{ID: "b", X: 0, Y: 0, W: 6, H: 3, MinW: 6},
			},
			want: Layout{
				{ID: "a", X: 6, Y: 0, W: 8, H: 4, MinW: 8},
				{ID: "b", X: 0, Y: 0, W: 6, H: 3, MinW: 6},
			},
		},
		{
			name: "width below minimum raised first",
			in: Layout{
				{ID: "a", X: 0, Y: 0, W: 1, H: 4, MinW: 3},
				{ID: "b", X: 1, Y: 0, W: 11, H: 4, MinW: 4},
			},
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "b", X: 3, Y: 0, W: 9, H: 4, MinW: 4},
			},
		},
		{
			name: "other rows untouched",
			in: Layout{
				{ID: "a", X: 2, Y: 0, W: 3, H: 4, MinW: 3},
				{ID: "c", X: 4, Y: 4, W: 2, H: 3, MinW: 2},
			},
			want: Layout{
				{ID: "a", X: 0, Y: 0, W: 12, H: 4, MinW: 3},
				{ID: "c", X: 4, Y: 4, W: 2, H: 3, MinW: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := tt.in.Clone()
			fitRow(l, tt.in[0].Y, 12, tt.pins)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestFitRow_NeverBelowMinW(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 12, H: 4, MinW: 8},
		{ID: "b", X: 6, Y: 0, W: 6, H: 3, MinW: 4},
		{ID: "c", X: 9, Y: 9, W: 3, H: 3, MinW: 2},
	}
	fitRow(l, 0, 12, nil)

	assert.Equal(t, 8, l[0].W)
	assert.Equal(t, 4, l[1].W)
	assert.Equal(t, 8, l[1].X)
	for _, it := range l {
		assert.GreaterOrEqual(t, it.W, it.MinW, it.ID)
	}
}

func TestFitRows_Deduplicates(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "a", X: 1, Y: 0, W: 2, H: 1},
		{ID: "b", X: 1, Y: 3, W: 2, H: 1},
	}
	fitRows(l, []int{3, 0, 3, 0}, 4, nil)
	assert.Equal(t, Item{ID: "a", X: 0, Y: 0, W: 4, H: 1}, l[0])
	assert.Equal(t, Item{ID: "b", X: 0, Y: 3, W: 4, H: 1}, l[1])
}
