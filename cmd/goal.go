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

type goalAddCmd struct {
	title    string
	target   float64
	deadline string
}

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "create a savings goal" }
func (*goalAddCmd) Usage() string {
	return `fai goal-add -title <title> -target <amount> -deadline <date>

  Creates a savings goal. The target must be positive; funding starts
  at zero.

Usage Examples:
$ fai goal-add -title "Viagem" -target 5000 -deadline 2025-12-31
`
}

func (p *goalAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "title", "", "Title of the goal.")
	f.Float64Var(&p.target, "target", 0, "Target amount in BRL.")
	f.StringVar(&p.deadline, "deadline", "", "Deadline (YYYY-MM-DD).")
}

func (p *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	deadline, err := financeai.ParseDate(p.deadline)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	goal, err := store.AddGoal(financeai.Goal{
		Title:        p.title,
		TargetAmount: financeai.M(p.target),
		Deadline:     deadline,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created goal %q targeting %s by %s (id %s)\n", goal.Title, goal.TargetAmount, goal.Deadline, goal.ID)
	return subcommands.ExitSuccess
}

type goalFundCmd struct {
	id     string
	amount float64
}

func (*goalFundCmd) Name() string     { return "goal-fund" }
func (*goalFundCmd) Synopsis() string { return "add funds to a savings goal" }
func (*goalFundCmd) Usage() string {
	return `fai goal-fund -id <id> -a <amount>

  Adds the amount to the goal's current funding. Funding past the target
  is allowed; progress stays clamped at 100%.
`
}

func (p *goalFundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the goal to fund.")
	f.Float64Var(&p.amount, "a", 0, "Amount to add, in BRL.")
}

func (p *goalFundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if p.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be positive.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	goal, ok := store.FindGoal(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q\n", p.id)
		return subcommands.ExitFailure
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(financeai.M(p.amount))
	if err := store.UpdateGoal(goal); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Goal %q now at %s of %s (%d%%)\n", goal.Title, goal.CurrentAmount, goal.TargetAmount, goal.Progress())
	return subcommands.ExitSuccess
}

type goalRmCmd struct {
	id string
}

func (*goalRmCmd) Name() string     { return "goal-rm" }
func (*goalRmCmd) Synopsis() string { return "delete a savings goal" }
func (*goalRmCmd) Usage() string {
	return `fai goal-rm -id <id>

  Deletes the goal with the given id.
`
}

func (p *goalRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the goal to delete.")
}

func (p *goalRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	openStore().DeleteGoal(p.id)
	fmt.Printf("Deleted goal %s\n", p.id)
	return subcommands.ExitSuccess
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `fai goals

  Lists savings goals with funding, deadline and derived progress.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Goals(openStore().Goals()))
	return subcommands.ExitSuccess
}
