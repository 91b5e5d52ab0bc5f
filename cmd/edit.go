package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
)

type editCmd struct {
	id          string
	amount      float64
	description string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `fai edit -id <id> [-a <amount>] [-desc <description>] [-c <category>] [-d <date>]

  Replaces fields of an existing transaction. Only the flags passed are
  changed; the rest keep their stored value.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to edit.")
	f.Float64Var(&p.amount, "a", -1, "New amount in BRL.")
	f.StringVar(&p.description, "desc", "", "New description.")
	f.StringVar(&p.category, "c", "", "New category.")
	f.StringVar(&p.date, "d", "", "New date (YYYY-MM-DD).")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	tx, ok := store.FindTransaction(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q\n", p.id)
		return subcommands.ExitFailure
	}

	if p.amount >= 0 {
		tx.Amount = financeai.M(p.amount)
	}
	if p.description != "" {
		tx.Description = p.description
	}
	if p.category != "" {
		tx.Category = p.category
	}
	if p.date != "" {
		day, err := financeai.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		tx.Date = day
	}

	if err := store.UpdateTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}
