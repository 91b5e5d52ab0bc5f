package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
	"github.com/menezesjss/financeai/renderer"
)

type invAddCmd struct {
	name     string
	typ      string
	invested float64
	current  float64
}

func (*invAddCmd) Name() string     { return "inv-add" }
func (*invAddCmd) Synopsis() string { return "record a held investment" }
func (*invAddCmd) Usage() string {
	return `fai inv-add -name <name> [-type <type>] -invested <amount> [-current <amount>]

  Records an investment. When -current is omitted it starts equal to the
  invested amount.

Usage Examples:
$ fai inv-add -name "CDB Banco X" -type "Renda Fixa (CDB/Tesouro)" -invested 1000
`
}

func (p *invAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Name of the asset.")
	f.StringVar(&p.typ, "type", "", "Asset class. Defaults to "+financeai.InvestmentTypes[0]+".")
	f.Float64Var(&p.invested, "invested", 0, "Amount invested, in BRL.")
	f.Float64Var(&p.current, "current", -1, "Current value, in BRL. Defaults to the invested amount.")
}

func (p *invAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current := p.current
	if current < 0 {
		current = p.invested
	}

	store := openStore()
	inv, err := store.AddInvestment(financeai.Investment{
		Name:           p.name,
		Type:           p.typ,
		InvestedAmount: financeai.M(p.invested),
		CurrentAmount:  financeai.M(current),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded investment %q worth %s (id %s)\n", inv.Name, inv.CurrentAmount, inv.ID)
	return subcommands.ExitSuccess
}

type invUpdateCmd struct {
	id      string
	current float64
}

func (*invUpdateCmd) Name() string     { return "inv-update" }
func (*invUpdateCmd) Synopsis() string { return "refresh the current value of an investment" }
func (*invUpdateCmd) Usage() string {
	return `fai inv-update -id <id> -current <amount>

  Sets the current value of the investment and stamps the update time.
`
}

func (p *invUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the investment to update.")
	f.Float64Var(&p.current, "current", -1, "New current value, in BRL.")
}

func (p *invUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if p.current < 0 {
		fmt.Fprintln(os.Stderr, "Error: -current must not be negative.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	inv, ok := store.FindInvestment(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no investment with id %q\n", p.id)
		return subcommands.ExitFailure
	}

	inv.CurrentAmount = financeai.M(p.current)
	inv.LastUpdated = time.Now()
	if err := store.UpdateInvestment(inv); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Investment %q now worth %s (%s return)\n", inv.Name, inv.CurrentAmount, inv.ProfitPercent())
	return subcommands.ExitSuccess
}

type invRmCmd struct {
	id string
}

func (*invRmCmd) Name() string     { return "inv-rm" }
func (*invRmCmd) Synopsis() string { return "delete an investment" }
func (*invRmCmd) Usage() string {
	return `fai inv-rm -id <id>

  Deletes the investment with the given id.
`
}

func (p *invRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the investment to delete.")
}

func (p *invRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	openStore().DeleteInvestment(p.id)
	fmt.Printf("Deleted investment %s\n", p.id)
	return subcommands.ExitSuccess
}

type invsCmd struct{}

func (*invsCmd) Name() string     { return "invs" }
func (*invsCmd) Synopsis() string { return "list investments and portfolio totals" }
func (*invsCmd) Usage() string {
	return `fai invs

  Lists investments with invested amount, current value and derived
  profit, preceded by portfolio totals.
`
}

func (c *invsCmd) SetFlags(f *flag.FlagSet) {}

func (c *invsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Investments(openStore().Investments()))
	return subcommands.ExitSuccess
}
