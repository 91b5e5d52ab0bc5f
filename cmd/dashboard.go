package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
	"github.com/menezesjss/financeai/renderer"
)

type dashboardCmd struct {
	date   string
	filter string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the monthly overview dashboard" }
func (*dashboardCmd) Usage() string {
	return `fai dashboard [-d <date>] [-filter <all|income|expense>]

  Renders the overview for the month of the given date: income, expenses,
  balance and savings rate, the daily performance series, the six month
  trend and the expense breakdown by category.
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.filter, "filter", "all", "Daily series filter (all, income, expense).")
}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := financeai.Today()
	if p.date != "" {
		var err error
		on, err = financeai.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	filter, err := financeai.ParseTypeFilter(p.filter)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	transactions := openStore().Transactions()
	summary := financeai.NewMonthlySummary(transactions, on)
	daily := financeai.DailySeries(transactions, on, filter)
	trend := financeai.SixMonthTrend(transactions, on)
	categories := financeai.CategoryBreakdown(transactions)

	printMarkdown(renderer.Dashboard(summary, daily, trend, categories))
	return subcommands.ExitSuccess
}
