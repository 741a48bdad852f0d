package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemIntersection(t *testing.T) {
	t.Parallel()

	base := Item{ID: "a", X: 0, Y: 0, W: 3, H: 4}

	tests := []struct {
		name  string
		other Item
		want  int
	}{
		{"identical", Item{ID: "b", X: 0, Y: 0, W: 3, H: 4}, 12},
		{"partial", Item{ID: "b", X: 2, Y: 2, W: 3, H: 4}, 2},
		{"touching edge", Item{ID: "b", X: 3, Y: 0, W: 9, H: 4}, 0},
		{"touching bottom", Item{ID: "b", X: 0, Y: 4, W: 6, H: 3}, 0},
		{"contained", Item{ID: "b", X: 1, Y: 1, W: 1, H: 1}, 1},
		{"disjoint", Item{ID: "b", X: 8, Y: 8, W: 2, H: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base.Intersection(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersection(base))
			assert.Equal(t, tt.want > 0, base.Overlaps(tt.other))
		})
	}
}

func TestItemClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Item
		cols int
		want Item
	}{
		{
			name: "below minimums",
			in:   Item{X: 0, Y: 0, W: 1, H: 1, MinW: 3, MinH: 4},
			cols: 12,
			want: Item{X: 0, Y: 0, W: 3, H: 4, MinW: 3, MinH: 4},
		},
		{
			name: "wider than grid",
			in:   Item{X: 4, Y: 2, W: 20, H: 3, MinW: 4},
			cols: 12,
			want: Item{X: 0, Y: 2, W: 12, H: 3, MinW: 4},
		},
		{
			name: "past right edge",
			in:   Item{X: 10, Y: -2, W: 4, H: 3},
			cols: 12,
			want: Item{X: 8, Y: 0, W: 4, H: 3},
		},
		{
			name: "minimum wider than grid",
			in:   Item{X: 1, Y: 0, W: 2, H: 3, MinW: 8},
			cols: 6,
			want: Item{X: 0, Y: 0, W: 8, H: 3, MinW: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.clamp(tt.cols))
		})
	}
}

func TestDefaults_Settled(t *testing.T) {
	t.Parallel()

	cols := DefaultColumns()
	defaults := Defaults()
	require.Len(t, defaults, len(Breakpoints))

	for _, bp := range Breakpoints {
		l, ok := defaults[bp]
		require.True(t, ok, "missing %s", bp)
		assert.True(t, l.Settled(), "%s overlaps: %v", bp, l.Overlaps())
		assert.Len(t, l, 5)
		for _, it := range l {
			assert.LessOrEqual(t, it.Right(), cols[bp], "%s/%s", bp, it.ID)
			assert.GreaterOrEqual(t, it.W, it.MinW)
			assert.GreaterOrEqual(t, it.H, it.MinH)
		}
	}
}

func TestDefaults_IndependentCopies(t *testing.T) {
	t.Parallel()

	a := Defaults()
	a[LG][0].X = 99
	a[MD] = nil

	b := Defaults()
	assert.Equal(t, 0, b[LG][0].X)
	assert.Len(t, b[MD], 5)
}

func TestLayoutHelpers(t *testing.T) {
	t.Parallel()

	l := Layout{
		{ID: "b", X: 3, Y: 4, W: 3, H: 2},
		{ID: "a", X: 0, Y: 0, W: 3, H: 4},
		{ID: "c", X: 0, Y: 4, W: 4, H: 2},
	}

	assert.Equal(t, 2, l.Index("c"))
	assert.Equal(t, -1, l.Index("zzz"))

	it, ok := l.Get("a")
	require.True(t, ok)
	assert.Equal(t, 12, it.Area())

	assert.Equal(t, []int{0, 4}, l.Rows())
	assert.Equal(t, []string{"a", "c", "b"}, idsOf(l.Sorted()))

	assert.False(t, l.Settled())
	assert.Equal(t, []Overlap{{A: "b", B: "c", Area: 2}}, l.Overlaps())

	clone := l.Clone()
	clone[0].X = 50
	assert.Equal(t, 3, l[0].X)
	assert.Nil(t, Layout(nil).Clone())
}

func idsOf(l Layout) []string {
	out := make([]string, len(l))
	for i, it := range l {
		out[i] = it.ID
	}
	return out
}
