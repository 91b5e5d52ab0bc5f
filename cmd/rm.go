package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `fai rm -id <id>

  Deletes the transaction with the given id. Deleting an unknown id is
  not an error.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to delete.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	store.DeleteTransaction(p.id)
	fmt.Printf("Deleted transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
