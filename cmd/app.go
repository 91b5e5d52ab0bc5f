// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/menezesjss/financeai"
)

// Commands is the full set of subcommands a main package should register.
var Commands = []subcommands.Command{
	// transactions
	&addCmd{},
	&rmCmd{},
	&editCmd{},
	&txCmd{},
	&importCmd{},
	// reports
	&dashboardCmd{},
	// goals
	&goalAddCmd{},
	&goalFundCmd{},
	&goalRmCmd{},
	&goalsCmd{},
	// investments
	&invAddCmd{},
	&invUpdateCmd{},
	&invRmCmd{},
	&invsCmd{},
	// predictions
	&forecastCmd{},
	&simulateCmd{},
	// docs
	&topicCmd{},
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data", ".financeai", "Path to the folder holding the finance records")

// openStore opens the record store from the app data folder. A missing or
// empty folder yields an empty store.
func openStore() *financeai.Store {
	return financeai.Open(financeai.DirStorage{Dir: *dataDir})
}
