package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/greenbag/intervention-cli/internal/gesture"
	"github.com/greenbag/intervention-cli/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and exercise the dashboard card grid",
	Long:  "Commands for printing default layouts and replaying drag/resize gesture scripts through the reconciliation engine.",
}

// -- layout show --

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default layouts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bp, _ := cmd.Flags().GetString("breakpoint")
		format, _ := cmd.Flags().GetString("format")

		defaults := layout.Defaults()
		bps := layout.Breakpoints
		if bp != "" {
			if _, ok := defaults[layout.Breakpoint(bp)]; !ok {
				return eris.Errorf("layout show: unknown breakpoint %q", bp)
			}
			bps = []layout.Breakpoint{layout.Breakpoint(bp)}
		}

		if format == formatJSON {
			sel := make(layout.Layouts, len(bps))
			for _, b := range bps {
				sel[b] = defaults[b]
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sel)
		}

		cols := layout.DefaultColumns()
		for i, b := range bps {
			if i > 0 {
				_, _ = fmt.Fprintln(os.Stdout)
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s (%d columns)\n", b, cols[b])
			formatLayout(os.Stdout, defaults[b])
		}
		return nil
	},
}

// -- layout replay --

var layoutReplayCmd = &cobra.Command{
	Use:   "replay <script.yaml>...",
	Short: "Replay gesture scripts against fresh layout stores",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("layout"); err != nil {
			return err
		}
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		format, _ := cmd.Flags().GetString("format")

		scripts := make([]*gesture.Script, len(args))
		for i, path := range args {
			s, err := gesture.Load(path)
			if err != nil {
				return err
			}
			scripts[i] = s
		}

		opts := layout.Options{
			SwapThreshold:    cfg.Layout.SwapThreshold,
			MaxResolvePasses: cfg.Layout.MaxResolvePasses,
		}
		reports, err := replayScripts(cmd.Context(), scripts, opts, concurrency)
		if err != nil {
			return err
		}

		if format == formatJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		for i, rep := range reports {
			if i > 0 {
				_, _ = fmt.Fprintln(os.Stdout)
			}
			formatReport(os.Stdout, rep)
		}
		return nil
	},
}

func init() {
	layoutShowCmd.Flags().String("breakpoint", "", "only this breakpoint (lg, md, sm, xs, xxs)")
	layoutShowCmd.Flags().String("format", formatTable, "output format (table, json)")

	layoutReplayCmd.Flags().Int("concurrency", 4, "scripts replayed in parallel")
	layoutReplayCmd.Flags().String("format", formatTable, "output format (table, json)")

	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutReplayCmd)
	rootCmd.AddCommand(layoutCmd)
}

// replayScripts runs each script against its own store. Reports come back in
// script order. The first failing script cancels the rest.
func replayScripts(ctx context.Context, scripts []*gesture.Script, opts layout.Options, concurrency int) ([]*gesture.Report, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	reports := make([]*gesture.Report, len(scripts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range scripts {
		g.Go(func() error {
			runID := uuid.New().String()
			log := zap.L().With(zap.String("run_id", runID), zap.String("script", s.Name))

			store := layout.NewStore(nil, layout.WithOptions(opts))
			rep, err := gesture.Replay(gctx, s, store)
			if err != nil {
				log.Error("replay failed", zap.Error(err))
				return eris.Wrapf(err, "layout replay: %s", s.Name)
			}

			log.Info("replay complete",
				zap.Int("steps", len(rep.Steps)),
				zap.String("active", string(rep.Active)),
			)
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// formatLayout writes the items of l in reading order.
func formatLayout(out io.Writer, l layout.Layout) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tX\tY\tW\tH\tMIN_W\tMIN_H")
	_, _ = fmt.Fprintln(w, "--\t-\t-\t-\t-\t-----\t-----")
	for _, it := range l.Sorted() {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			it.ID, it.X, it.Y, it.W, it.H, it.MinW, it.MinH)
	}
	_ = w.Flush()
}

// formatReport writes the step outcomes of a replay and the final layout of
// the breakpoint it ended on.
func formatReport(out io.Writer, rep *gesture.Report) {
	_, _ = fmt.Fprintf(out, "Script: %s\n", rep.Script)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STEP\tOP\tITEM\tBREAKPOINT\tOUTCOME")
	_, _ = fmt.Fprintln(w, "----\t--\t----\t----------\t-------")
	for _, st := range rep.Steps {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			st.Index, st.Op, st.ID, st.Breakpoint, st.Outcome)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nFinal %s layout:\n", rep.Active)
	formatLayout(out, rep.Final[rep.Active])
}
