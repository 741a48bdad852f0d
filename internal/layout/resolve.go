package layout

import (
	"cmp"
	"slices"
)

// resolveVertical pushes overlapping items straight down until no pair
// overlaps or maxPasses passes have run. Items only ever move down, so the
// item that stays put in a pair is the keeper (see keeps). Reports whether
// the layout is settled.
func resolveVertical(l Layout, p pins, maxPasses int) bool {
	order := make([]int, len(l))
	for pass := 0; pass < maxPasses; pass++ {
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(a, b int) int {
			if c := cmp.Compare(l[a].Y, l[b].Y); c != 0 {
				return c
			}
			if c := cmp.Compare(l[a].X, l[b].X); c != 0 {
				return c
			}
			return cmp.Compare(l[a].ID, l[b].ID)
		})

		moved := false
		for a := range order {
			for b := a + 1; b < len(order); b++ {
				i, j := order[a], order[b]
				if !l[i].Overlaps(l[j]) {
					continue
				}
				keep, push := i, j
				if !keeps(l[i], l[j], p) {
					keep, push = j, i
				}
				l[push].Y = l[keep].Bottom()
				moved = true
			}
		}
		if !moved {
			return true
		}
	}
	return l.Settled()
}

// keeps reports whether a holds its position against b. The more pinned
// item wins; otherwise the upper item, then the larger footprint on the
// same row, then the leftmost, then the lower id.
func keeps(a, b Item, p pins) bool {
	if pa, pb := p[a.ID], p[b.ID]; pa != pb {
		return pa > pb
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.Area() != b.Area() {
		return a.Area() > b.Area()
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.ID < b.ID
}
