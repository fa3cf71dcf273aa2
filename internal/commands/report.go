package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/config"
	"github.com/cleared-dev/budgetreport/internal/report"
	"github.com/cleared-dev/budgetreport/internal/reportlog"
)

// reportOptions are the command-line overrides for the configured report.
type reportOptions struct {
	dir             string
	period          string
	year            int
	start           int
	end             int
	budget          string
	byMonth         bool
	subtotalParents bool
}

func (o *reportOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&o.period, "period", "", "automatic, this_year, last_year, this_month, last_month, or custom")
	cmd.Flags().IntVar(&o.year, "year", 0, "report year (implies --period custom)")
	cmd.Flags().IntVar(&o.start, "start", 1, "first month of a custom period")
	cmd.Flags().IntVar(&o.end, "end", 12, "last month of a custom period")
	cmd.Flags().StringVar(&o.budget, "budget", "", "budget to compare against")
	cmd.Flags().BoolVar(&o.byMonth, "by-month", false, "show a column group per month")
	cmd.Flags().BoolVar(&o.subtotalParents, "subtotal-parents", false, "show totals on parent category rows")
}

// apply overrides rc with the flags the user set.
func (o *reportOptions) apply(cmd *cobra.Command, rc *config.ReportConfig) error {
	flags := cmd.Flags()
	if flags.Changed("period") {
		p, err := config.ParsePeriod(o.period)
		if err != nil {
			return err
		}
		rc.Period = p
	}
	if flags.Changed("year") {
		rc.Period = config.PeriodCustom
		rc.Year = o.year
	}
	if rc.Period == config.PeriodCustom {
		if flags.Changed("start") || rc.StartMonth == 0 {
			rc.StartMonth = o.start
		}
		if flags.Changed("end") || rc.EndMonth == 0 {
			rc.EndMonth = o.end
		}
	}
	if flags.Changed("budget") {
		rc.Budget = o.budget
	}
	if flags.Changed("by-month") {
		rc.SubtotalByMonth = o.byMonth
	}
	if flags.Changed("subtotal-parents") {
		rc.SubtotalParents = o.subtotalParents
	}
	return nil
}

func newReportCommand() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show budgeted and actual amounts by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, &opts, time.Now())
		},
	}
	opts.register(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions, now time.Time) error {
	p, err := openProject(opts.dir)
	if err != nil {
		return err
	}

	res, err := buildReport(cmd, p, opts, now)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), res, p.cfg.Currency.DecimalPlaces)
}

// buildReport builds the report selected by the config and flags and records
// its diagnostics in the project's report log.
func buildReport(cmd *cobra.Command, p *project, opts *reportOptions, now time.Time) (*report.Result, error) {
	rc := p.cfg.Report
	if err := opts.apply(cmd, &rc); err != nil {
		return nil, err
	}
	window, err := rc.Window(now)
	if err != nil {
		return nil, err
	}

	params := report.Params{
		Name:            rc.Name,
		Budget:          rc.Budget,
		Window:          window,
		SubtotalByMonth: rc.SubtotalByMonth,
		SubtotalParents: rc.SubtotalParents,
	}
	res, err := report.Build(params, report.Sources{
		Categories:   p.categories,
		Budgets:      p.budgets,
		Transactions: p.transactions,
	}, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	if _, err := reportlog.Open(p.dir).Record(logEntries(res, now)); err != nil {
		return nil, err
	}
	return res, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func logEntries(res *report.Result, now time.Time) []reportlog.Entry {
	entries := make([]reportlog.Entry, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		entries = append(entries, reportlog.Entry{
			Timestamp: now,
			Report:    res.Params.Name,
			Kind:      d.Kind,
			Row:       d.Row,
			Category:  d.Category,
			Details:   d.Error(),
		})
	}
	return entries
}
