package gesture

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/greenbag/intervention-cli/internal/layout"
)

// StepResult records what one step did.
type StepResult struct {
	Index      int               `json:"index"`
	Op         Op                `json:"op"`
	ID         string            `json:"id,omitempty"`
	Breakpoint layout.Breakpoint `json:"breakpoint"`
	Outcome    layout.Outcome    `json:"outcome,omitempty"`
}

// Report is the result of a full replay.
type Report struct {
	Script string            `json:"script"`
	Steps  []StepResult      `json:"steps"`
	Active layout.Breakpoint `json:"active"`
	Final  layout.Layouts    `json:"final"`
}

// Replay runs every step of s against store. It stops at the first invalid
// step; steps already applied stay committed in the store.
func Replay(ctx context.Context, s *Script, store *layout.Store) (*Report, error) {
	log := zap.L().With(zap.String("script", s.Name))

	if s.Breakpoint != "" {
		if err := store.OnBreakpointChange(s.Breakpoint); err != nil {
			return nil, eris.Wrap(err, "gesture: initial breakpoint")
		}
	}

	rep := &Report{Script: s.Name, Steps: make([]StepResult, 0, len(s.Steps))}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "gesture: replay cancelled")
		}

		res, err := apply(store, st)
		if err != nil {
			return nil, eris.Wrapf(err, "gesture: step %d", i)
		}
		res.Index = i
		rep.Steps = append(rep.Steps, res)

		log.Debug("gesture: step applied",
			zap.Int("step", i),
			zap.String("op", string(st.Op)),
			zap.String("item", st.ID),
			zap.String("outcome", string(res.Outcome)),
		)
	}

	rep.Active = store.Active()
	rep.Final = store.Layouts()
	return rep, nil
}

func apply(store *layout.Store, st Step) (StepResult, error) {
	res := StepResult{Op: st.Op, ID: st.ID}

	switch st.Op {
	case OpDrag, OpResize:
		live := store.Layout(store.Active())
		before, ok := live.Get(st.ID)
		if !ok {
			return res, eris.Errorf("unknown item %q on %s", st.ID, store.Active())
		}

		after := before
		var r layout.Result
		if st.Op == OpDrag {
			setIf(&after.X, st.X)
			setIf(&after.Y, st.Y)
			store.OnDragStart(live)
			r = store.OnDragStop(live, before, after)
		} else {
			setIf(&after.W, st.W)
			setIf(&after.H, st.H)
			r = store.OnResizeStop(live, before, after)
		}
		res.Outcome = r.Outcome

	case OpBreakpoint:
		if err := store.OnBreakpointChange(st.Breakpoint); err != nil {
			return res, err
		}

	case OpReset:
		store.Reset()

	default:
		return res, eris.Errorf("unknown op %q", st.Op)
	}

	res.Breakpoint = store.Active()
	return res, nil
}

func setIf(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
