package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai/predict"
	"github.com/menezesjss/financeai/renderer"
)

type simulateCmd struct{}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "estimate the impact of a hypothetical scenario" }
func (*simulateCmd) Usage() string {
	return `fai simulate <scenario>

  Estimates the impact of a hypothetical change on the next month's
  balance, from the most recent transactions. Requires GEMINI_API_KEY.

Usage Examples:
$ fai simulate "e se eu reduzir gastos com lazer em 20%?"
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario := strings.TrimSpace(strings.Join(f.Args(), " "))
	if scenario == "" {
		fmt.Fprintln(os.Stderr, "Error: a scenario is required.")
		return subcommands.ExitUsageError
	}

	client, err := predict.NewClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not reach the prediction service: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := client.Simulate(ctx, openStore().Transactions(), scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: simulation failed: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Simulation(result))
	return subcommands.ExitSuccess
}
