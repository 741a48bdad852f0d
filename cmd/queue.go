package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/greenbag/intervention-cli/internal/population"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show one page of an intervention queue",
	Long:  "Builds the priority and regular queues from the population and prints one page of the selected view (priority, regular, all, contacted).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("queue"); err != nil {
			return err
		}

		total, seed := populationParams(cmd)
		view, _ := cmd.Flags().GetString("view")
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")
		format, _ := cmd.Flags().GetString("format")

		priorityCount := cfg.Queue.PriorityCount
		if cmd.Flags().Changed("priority-count") {
			priorityCount, _ = cmd.Flags().GetInt("priority-count")
		}
		if size <= 0 {
			size = cfg.Queue.PageSize
		}

		views := population.BuildViews(populations.Get(total, seed), priorityCount)
		rows, ok := views.Select(view)
		if !ok {
			return eris.Errorf("queue: unknown view %q", view)
		}
		p := population.Paginate(rows, page, size)

		switch format {
		case formatJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		case formatTable:
			formatQueuePage(os.Stdout, view, p)
			return nil
		default:
			return eris.Errorf("queue: unknown format %q", format)
		}
	},
}

func init() {
	queueCmd.Flags().Int("total", 0, "population size (default from config)")
	queueCmd.Flags().Int64("seed", 0, "generator seed (default from config)")
	queueCmd.Flags().String("view", population.ViewPriority, "queue view (priority, regular, all, contacted)")
	queueCmd.Flags().Int("page", 1, "1-based page number")
	queueCmd.Flags().Int("page-size", 0, "rows per page (default from config)")
	queueCmd.Flags().Int("priority-count", 0, "rows in the priority queue (default from config)")
	queueCmd.Flags().String("format", formatTable, "output format (table, json)")
	rootCmd.AddCommand(queueCmd)
}

// formatQueuePage writes one page of a queue view followed by a position
// footer.
func formatQueuePage(out io.Writer, view string, p population.Page) {
	formatCustomers(out, p.Rows)
	if p.Total == 0 {
		_, _ = fmt.Fprintf(out, "\nNo customers in the %s queue.\n", view)
		return
	}
	_, _ = fmt.Fprintf(out, "\nShowing %d-%d of %d %s customers (page %d/%d)\n",
		p.Start+1, p.End, p.Total, view, p.Number, p.Pages)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show queue summary statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("queue"); err != nil {
			return err
		}

		total, seed := populationParams(cmd)
		format, _ := cmd.Flags().GetString("format")

		views := population.BuildViews(populations.Get(total, seed), cfg.Queue.PriorityCount)
		s := population.Summarize(views)

		switch format {
		case formatJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		case formatTable:
			formatSummary(os.Stdout, s)
			return nil
		default:
			return eris.Errorf("stats: unknown format %q", format)
		}
	},
}

func init() {
	statsCmd.Flags().Int("total", 0, "population size (default from config)")
	statsCmd.Flags().Int64("seed", 0, "generator seed (default from config)")
	statsCmd.Flags().String("format", formatTable, "output format (table, json)")
	rootCmd.AddCommand(statsCmd)
}

// formatSummary writes the dashboard headline numbers to w.
func formatSummary(out io.Writer, s population.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Total at risk:\t%d\n", s.TotalAtRisk)
	_, _ = fmt.Fprintf(w, "Help requested:\t%d\n", s.HelpRequested)
	_, _ = fmt.Fprintf(w, "Avg risk score:\t%d\n", s.AvgRiskScore)
	_, _ = fmt.Fprintf(w, "Immediate action:\t%d\n", s.ImmediateAction)
	_, _ = fmt.Fprintf(w, "Contacted:\t%d\n", s.Contacted)
	_ = w.Flush()
}
