package layout

import (
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Result is returned after every gesture.
type Result struct {
	Breakpoint Breakpoint `json:"breakpoint"`
	Outcome    Outcome    `json:"outcome"`
	Layouts    Layouts    `json:"layouts"`
}

// Store owns the per-breakpoint layouts of one dashboard session. Only the
// active breakpoint is touched by gestures. A Store is meant for a single
// owner and is not safe for concurrent use.
type Store struct {
	cols     Columns
	opts     Options
	defaults Layouts
	layouts  Layouts
	active   Breakpoint
	snapshot Layout
	lastSwap *swapRecord
}

// swapRecord remembers the most recent swap so that dragging either card
// straight back onto its partner restores the layout from before the swap.
type swapRecord struct {
	breakpoint    Breakpoint
	moved, target string
	before, after Layout
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithOptions overrides the reconciliation options.
func WithOptions(o Options) StoreOption {
	return func(s *Store) {
		if o.SwapThreshold > 0 {
			s.opts.SwapThreshold = o.SwapThreshold
		}
		if o.MaxResolvePasses > 0 {
			s.opts.MaxResolvePasses = o.MaxResolvePasses
		}
	}
}

// WithDefaults replaces the initial layouts. The store keeps its own copy.
func WithDefaults(ls Layouts) StoreOption {
	return func(s *Store) {
		s.defaults = ls.Clone()
	}
}

// NewStore creates a store initialised from the defaults with lg active.
// A nil cols uses DefaultColumns.
func NewStore(cols Columns, opts ...StoreOption) *Store {
	if cols == nil {
		cols = DefaultColumns()
	}
	s := &Store{
		cols:     cols,
		opts:     DefaultOptions(),
		defaults: Defaults(),
		active:   LG,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.layouts = s.defaults.Clone()
	return s
}

// Active returns the active breakpoint.
func (s *Store) Active() Breakpoint {
	return s.active
}

// Columns returns the column count of bp.
func (s *Store) Columns(bp Breakpoint) int {
	return s.cols[bp]
}

// Layouts returns a deep copy of every breakpoint's layout.
func (s *Store) Layouts() Layouts {
	return s.layouts.Clone()
}

// Layout returns a copy of one breakpoint's layout.
func (s *Store) Layout(bp Breakpoint) Layout {
	return s.layouts[bp].Clone()
}

// OnBreakpointChange makes bp the active breakpoint. No layout changes.
func (s *Store) OnBreakpointChange(bp Breakpoint) error {
	if _, ok := s.cols[bp]; !ok {
		return eris.Errorf("layout: unknown breakpoint %q", bp)
	}
	if _, ok := s.layouts[bp]; !ok {
		return eris.Errorf("layout: no layout for breakpoint %q", bp)
	}
	s.active = bp
	s.snapshot = nil
	s.lastSwap = nil
	return nil
}

// OnDragStart records the settled layout the drag starts from. A layout
// that is empty or already overlapping is replaced by the committed one.
func (s *Store) OnDragStart(l Layout) {
	if len(l) == 0 || !l.Settled() {
		l = s.layouts[s.active]
	}
	s.snapshot = l.Clone()
}

// OnDragStop reconciles a drop and commits the result for the active
// breakpoint.
func (s *Store) OnDragStop(live Layout, before, after Item) Result {
	snap := s.takeSnapshot()
	if l, ok := s.swapBack(snap, after); ok {
		return s.commit("drag", after.ID, l, OutcomeSwapped)
	}

	r := s.reconciler()
	l, outcome := r.drag(snap, live, before, after)
	res := s.commit("drag", after.ID, l, outcome)
	if outcome == OutcomeSwapped {
		target, _ := r.dropTarget(snap, after)
		s.lastSwap = &swapRecord{
			breakpoint: s.active,
			moved:      after.ID,
			target:     target.ID,
			before:     snap,
			after:      l.Clone(),
		}
	}
	return res
}

// swapBack undoes the last swap when nothing has changed since and the drop
// lands one of its two cards on the other.
func (s *Store) swapBack(snap Layout, after Item) (Layout, bool) {
	sw := s.lastSwap
	if sw == nil || sw.breakpoint != s.active || !slices.Equal(snap, sw.after) {
		return nil, false
	}

	var partner string
	switch after.ID {
	case sw.moved:
		partner = sw.target
	case sw.target:
		partner = sw.moved
	default:
		return nil, false
	}

	target, ok := s.reconciler().dropTarget(snap, after)
	if !ok || target.ID != partner {
		return nil, false
	}
	return sw.before.Clone(), true
}

// OnResizeStop reconciles a resize and commits the result for the active
// breakpoint.
func (s *Store) OnResizeStop(live Layout, before, after Item) Result {
	s.snapshot = nil
	snap := s.layouts[s.active].Clone()
	l, outcome := s.reconciler().resize(snap, live, before, after)
	return s.commit("resize", after.ID, l, outcome)
}

// Reset restores every breakpoint to the defaults and returns a copy that
// the caller may modify freely.
func (s *Store) Reset() Layouts {
	s.layouts = s.defaults.Clone()
	s.snapshot = nil
	s.lastSwap = nil
	zap.L().Debug("layout: reset", zap.String("breakpoint", string(s.active)))
	return s.layouts.Clone()
}

func (s *Store) reconciler() reconciler {
	return reconciler{cols: s.cols[s.active], opts: s.opts}
}

// takeSnapshot returns the drag-start snapshot, or the committed layout when
// no drag was started, and clears it.
func (s *Store) takeSnapshot() Layout {
	snap := s.snapshot
	s.snapshot = nil
	if snap == nil {
		snap = s.layouts[s.active].Clone()
	}
	return snap
}

func (s *Store) commit(gesture, id string, l Layout, outcome Outcome) Result {
	s.layouts[s.active] = l
	s.lastSwap = nil

	fields := []zap.Field{
		zap.String("gesture", gesture),
		zap.String("item", id),
		zap.String("breakpoint", string(s.active)),
		zap.String("outcome", string(outcome)),
	}
	if outcome == OutcomeReverted {
		zap.L().Warn("layout: gesture reverted", fields...)
	} else {
		zap.L().Debug("layout: gesture reconciled", fields...)
	}

	return Result{Breakpoint: s.active, Outcome: outcome, Layouts: s.layouts.Clone()}
}
