package layout

import (
	"cmp"
	"slices"
)

// pins ranks items that should hold their place during repair. Higher wins;
// unlisted items rank 0.
type pins map[string]int

const (
	pinTarget = 1 // swap target
	pinMoved  = 2 // item the user dragged or resized
)

// fitRow packs the items whose top edge is y left-to-right so their widths
// sum to cols. Items above their minimum width shrink one column at a time,
// most slack first; the last item then absorbs any leftover width.
// When the minimums alone exceed cols only the x offsets are normalised.
func fitRow(l Layout, y, cols int, p pins) {
	var row []int
	for i := range l {
		if l[i].Y == y {
			row = append(row, i)
		}
	}
	if len(row) == 0 {
		return
	}

	slices.SortFunc(row, func(a, b int) int {
		if c := cmp.Compare(l[a].X, l[b].X); c != 0 {
			return c
		}
		if c := cmp.Compare(p[l[b].ID], p[l[a].ID]); c != 0 {
			return c
		}
		return cmp.Compare(l[a].ID, l[b].ID)
	})

	sumMin, total := 0, 0
	for _, i := range row {
		l[i].W = max(l[i].W, l[i].minW())
		sumMin += l[i].minW()
		total += l[i].W
	}

	if sumMin > cols {
		packRow(l, row)
		return
	}

	for total > cols {
		shrink := -1
		for _, i := range row {
			slack := l[i].W - l[i].minW()
			if slack <= 0 {
				continue
			}
			if shrink < 0 || shrinkFirst(l[i], l[shrink], p) {
				shrink = i
			}
		}
		l[shrink].W--
		total--
	}

	if total < cols {
		l[row[len(row)-1]].W += cols - total
	}

	packRow(l, row)
}

// shrinkFirst reports whether a should lose a column before b. Ties go to
// the unpinned item, then to the one further right (a, since rows are
// scanned left-to-right).
func shrinkFirst(a, b Item, p pins) bool {
	sa, sb := a.W-a.minW(), b.W-b.minW()
	if sa != sb {
		return sa > sb
	}
	return p[a.ID] <= p[b.ID]
}

func packRow(l Layout, row []int) {
	x := 0
	for _, i := range row {
		l[i].X = x
		x += l[i].W
	}
}

// fitRows fits every distinct row in ys.
func fitRows(l Layout, ys []int, cols int, p pins) {
	ys = slices.Clone(ys)
	slices.Sort(ys)
	for _, y := range slices.Compact(ys) {
		fitRow(l, y, cols, p)
	}
}
