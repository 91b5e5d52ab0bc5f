package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
)

type addCmd struct {
	typ         string
	amount      float64
	description string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fai add -t <income|expense> -a <amount> -desc <description> [-c <category>] [-d <date>]

  Records a new transaction. The amount is always positive; the type
  carries the direction.

Usage Examples:
# Record a grocery expense for today.
$ fai add -t expense -a 312.40 -desc "Mercado" -c "Alimentação"

# Backdate a salary payment.
$ fai add -t income -a 5000 -desc "Salário" -c "Salário" -d 2025-01-05
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "expense", "Transaction type (income or expense).")
	f.Float64Var(&p.amount, "a", 0, "Transaction amount in BRL.")
	f.StringVar(&p.description, "desc", "", "Free-text description.")
	f.StringVar(&p.category, "c", "", "Category. Defaults to "+financeai.DefaultCategory+".")
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := financeai.ParseTransactionType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var day financeai.Date
	if p.date != "" {
		day, err = financeai.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	store := openStore()
	tx, err := store.AddTransaction(financeai.Transaction{
		Date:        day,
		Description: p.description,
		Category:    p.category,
		Type:        typ,
		Amount:      financeai.M(p.amount),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %q of %s on %s (id %s)\n", tx.Type.Label(), tx.Description, tx.Amount, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
