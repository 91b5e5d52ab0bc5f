package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai/renderer"
)

type txCmd struct {
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `fai tx [-head <n>]

  Lists recorded transactions, most recent first.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head < 0 {
		fmt.Fprintln(os.Stderr, "Error: -head must not be negative.")
		return subcommands.ExitUsageError
	}

	transactions := openStore().Transactions()
	if p.head > 0 && p.head < len(transactions) {
		transactions = transactions[:p.head]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
