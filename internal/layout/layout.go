// Package layout keeps the dashboard card grid free of overlaps while cards
// are dragged and resized, independently for every responsive breakpoint.
package layout

import (
	"cmp"
	"slices"
)

// Breakpoint names a responsive width tier.
type Breakpoint string

// Breakpoints from widest to narrowest.
const (
	LG  Breakpoint = "lg"
	MD  Breakpoint = "md"
	SM  Breakpoint = "sm"
	XS  Breakpoint = "xs"
	XXS Breakpoint = "xxs"
)

// Breakpoints lists every breakpoint in display order.
var Breakpoints = []Breakpoint{LG, MD, SM, XS, XXS}

// Columns maps a breakpoint to its grid column count.
type Columns map[Breakpoint]int

// DefaultColumns returns the column counts used by the dashboard grid.
func DefaultColumns() Columns {
	return Columns{LG: 12, MD: 10, SM: 6, XS: 4, XXS: 2}
}

// Item is the placement of one card in grid cells.
type Item struct {
	ID   string `json:"i" yaml:"i"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	W    int    `json:"w" yaml:"w"`
	H    int    `json:"h" yaml:"h"`
	MinW int    `json:"minW,omitempty" yaml:"min_w,omitempty"`
	MinH int    `json:"minH,omitempty" yaml:"min_h,omitempty"`
}

// Area is the footprint w*h.
func (it Item) Area() int { return it.W * it.H }

// Right is the first column past the item.
func (it Item) Right() int { return it.X + it.W }

// Bottom is the first row past the item.
func (it Item) Bottom() int { return it.Y + it.H }

func (it Item) minW() int { return max(it.MinW, 1) }

func (it Item) minH() int { return max(it.MinH, 1) }

// Intersection returns the number of cells shared by it and o.
func (it Item) Intersection(o Item) int {
	w := min(it.Right(), o.Right()) - max(it.X, o.X)
	h := min(it.Bottom(), o.Bottom()) - max(it.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Overlaps reports whether it and o share at least one cell.
func (it Item) Overlaps(o Item) bool {
	return it.Intersection(o) > 0
}

// clamp keeps the item inside a grid of cols columns and above its minimums.
func (it Item) clamp(cols int) Item {
	it.W = max(min(it.W, cols), it.minW())
	it.H = max(it.H, it.minH())
	it.X = max(min(it.X, cols-it.W), 0)
	it.Y = max(it.Y, 0)
	return it
}

// Layout is the ordered set of cards of one breakpoint.
type Layout []Item

// Clone returns an independent copy.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Index returns the position of the item with id, or -1.
func (l Layout) Index(id string) int {
	return slices.IndexFunc(l, func(it Item) bool { return it.ID == id })
}

// Get returns the item with id.
func (l Layout) Get(id string) (Item, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Item{}, false
}

// Overlap is a pair of items sharing cells.
type Overlap struct {
	A, B string
	Area int
}

// Overlaps returns every overlapping pair in layout order.
func (l Layout) Overlaps() []Overlap {
	var out []Overlap
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			if a := l[i].Intersection(l[j]); a > 0 {
				out = append(out, Overlap{A: l[i].ID, B: l[j].ID, Area: a})
			}
		}
	}
	return out
}

// Settled reports whether no two items overlap.
func (l Layout) Settled() bool {
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			if l[i].Overlaps(l[j]) {
				return false
			}
		}
	}
	return true
}

// Rows returns the distinct y values in ascending order.
func (l Layout) Rows() []int {
	rows := make([]int, 0, len(l))
	for _, it := range l {
		rows = append(rows, it.Y)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// Sorted returns a copy ordered top-to-bottom, left-to-right.
func (l Layout) Sorted() Layout {
	out := l.Clone()
	slices.SortFunc(out, func(a, b Item) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Layouts maps each breakpoint to its layout.
type Layouts map[Breakpoint]Layout

// Clone returns a deep copy.
func (ls Layouts) Clone() Layouts {
	out := make(Layouts, len(ls))
	for bp, l := range ls {
		out[bp] = l.Clone()
	}
	return out
}
