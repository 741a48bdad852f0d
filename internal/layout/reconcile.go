package layout

// Outcome records which repair path produced a committed layout.
type Outcome string

// Reconciliation outcomes.
const (
	OutcomeSwapped  Outcome = "swapped"  // moved item exchanged places with the card it landed on
	OutcomeFitted   Outcome = "fitted"   // row fitting alone settled the grid
	OutcomeResolved Outcome = "resolved" // vertical resolution was needed
	OutcomeReverted Outcome = "reverted" // repairs failed; the pre-gesture layout was restored
)

// Options tunes reconciliation.
type Options struct {
	// SwapThreshold is the share of the moved card's area that must overlap
	// another card for the drop to become a swap.
	SwapThreshold float64
	// MaxResolvePasses caps vertical overlap resolution.
	MaxResolvePasses int
}

// DefaultOptions returns the dashboard's reconciliation settings.
func DefaultOptions() Options {
	return Options{SwapThreshold: 0.3, MaxResolvePasses: 32}
}

// reconciler runs the repair strategies for one breakpoint.
type reconciler struct {
	cols int
	opts Options
}

// drag settles a drop of before→after. snapshot is the settled layout from
// drag start and live is the renderer's layout at drop time. Candidates are
// tried in order (swap, plain move) and the first settled one wins;
// otherwise the snapshot comes back unchanged.
func (r reconciler) drag(snapshot, live Layout, before, after Item) (Layout, Outcome) {
	base, ok := snapshot.Get(after.ID)
	if !ok {
		return snapshot.Clone(), OutcomeReverted
	}
	after = withMins(after, base).clamp(r.cols)

	if target, ok := r.swapTarget(snapshot, after); ok {
		cand := snapshot.Clone()
		mi, ti := cand.Index(after.ID), cand.Index(target.ID)
		cand[mi].X, cand[mi].Y = target.X, target.Y
		cand[ti].X, cand[ti].Y = base.X, base.Y

		p := pins{after.ID: pinMoved, target.ID: pinTarget}
		if l, _, ok := r.repair(cand, after.ID, p, []int{base.Y, target.Y}); ok {
			return l, OutcomeSwapped
		}
	}

	cand := r.withItem(snapshot, live, after)
	p := pins{after.ID: pinMoved}
	if l, outcome, ok := r.repair(cand, after.ID, p, []int{before.Y, after.Y}); ok {
		return l, outcome
	}
	return snapshot.Clone(), OutcomeReverted
}

// resize settles a resize of before→after. There is no swap; the resized
// item keeps its place and its neighbours make room.
func (r reconciler) resize(snapshot, live Layout, before, after Item) (Layout, Outcome) {
	base, ok := snapshot.Get(after.ID)
	if !ok {
		return snapshot.Clone(), OutcomeReverted
	}
	after = withMins(after, base).clamp(r.cols)

	cand := r.withItem(snapshot, live, after)
	p := pins{after.ID: pinMoved}
	if l, outcome, ok := r.repair(cand, after.ID, p, []int{before.Y, after.Y}); ok {
		return l, outcome
	}
	return snapshot.Clone(), OutcomeReverted
}

// dropTarget returns the card a drop of after would swap with.
func (r reconciler) dropTarget(snapshot Layout, after Item) (Item, bool) {
	base, ok := snapshot.Get(after.ID)
	if !ok {
		return Item{}, false
	}
	return r.swapTarget(snapshot, withMins(after, base).clamp(r.cols))
}

// swapTarget finds the snapshot card sharing the most cells with the moved
// card's new rectangle, if that share reaches the swap threshold.
func (r reconciler) swapTarget(snapshot Layout, moved Item) (Item, bool) {
	var best Item
	bestArea := 0
	for _, it := range snapshot {
		if it.ID == moved.ID {
			continue
		}
		if a := it.Intersection(moved); a > bestArea {
			best, bestArea = it, a
		}
	}
	if bestArea == 0 {
		return Item{}, false
	}
	return best, float64(bestArea) >= r.opts.SwapThreshold*float64(moved.Area())
}

// withItem returns the live layout (or the snapshot when live does not know
// the item) with it placed.
func (r reconciler) withItem(snapshot, live Layout, it Item) Layout {
	src := live
	if src.Index(it.ID) < 0 {
		src = snapshot
	}
	out := src.Clone()
	out[out.Index(it.ID)] = it
	return out
}

// repair pushes full-width row mates down, fits the touched rows and falls
// back to vertical resolution. l is modified in place.
func (r reconciler) repair(l Layout, pinned string, p pins, rows []int) (Layout, Outcome, bool) {
	it, _ := l.Get(pinned)
	if it.W >= r.cols {
		below := it.Bottom()
		for i := range l {
			if l[i].ID != it.ID && l[i].Y == it.Y {
				l[i].Y = below
			}
		}
		rows = append(rows, below)
	}

	fitRows(l, append(rows, it.Y), r.cols, p)
	if l.Settled() {
		return l, OutcomeFitted, true
	}

	resolveVertical(l, p, r.opts.MaxResolvePasses)
	fitRows(l, l.Rows(), r.cols, p)
	if l.Settled() {
		return l, OutcomeResolved, true
	}
	return nil, "", false
}

// withMins copies the minimum sizes from the stored item; renderers do not
// always echo them back.
func withMins(it, stored Item) Item {
	if it.MinW == 0 {
		it.MinW = stored.MinW
	}
	if it.MinH == 0 {
		it.MinH = stored.MinH
	}
	return it
}
