package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai/predict"
	"github.com/menezesjss/financeai/renderer"
)

type forecastCmd struct{}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "estimate balances 3, 6 and 12 months ahead" }
func (*forecastCmd) Usage() string {
	return `fai forecast

  Sends a summary of the most recent transactions to the Gemini API and
  renders estimated balances at 3, 6 and 12 months, an insight and the
  identified risks. Requires GEMINI_API_KEY. When the service cannot be
  reached, a neutral result is rendered instead.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := predict.NewClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not reach the prediction service: %v\n", err)
		return subcommands.ExitFailure
	}

	prediction := client.Forecast(ctx, openStore().Transactions())
	printMarkdown(renderer.Prediction(prediction))
	return subcommands.ExitSuccess
}
