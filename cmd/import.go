package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
)

type importCmd struct {
	file    string
	mapping string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON bank export" }
func (*importCmd) Usage() string {
	return `fai import -file <export.json> -map <mapping.json>

  Imports transactions from a JSON bank export. The mapping file holds
  jsonpath expressions locating the record list and the fields of each
  record. See "fai topic transactions" for the mapping format.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Path to the JSON export to import.")
	f.StringVar(&p.mapping, "map", "", "Path to the jsonpath mapping file.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" || p.mapping == "" {
		fmt.Fprintln(os.Stderr, "Error: -file and -map are required.")
		return subcommands.ExitUsageError
	}

	mf, err := os.Open(p.mapping)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer mf.Close()
	mapping, err := financeai.LoadMapping(mf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid mapping file: %v\n", err)
		return subcommands.ExitFailure
	}

	ef, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer ef.Close()
	transactions, err := financeai.ImportStatement(ef, mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not import %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}

	store := openStore()
	for _, tx := range transactions {
		if _, err := store.AddTransaction(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: rejected record %q: %v\n", tx.Description, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transactions from %q\n", len(transactions), p.file)
	return subcommands.ExitSuccess
}
