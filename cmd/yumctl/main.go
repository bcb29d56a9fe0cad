// Command yumctl is the operator tool for the Yum values service: it
// browses the catalog, prices selections, runs migrations, and inspects
// stored session ledgers.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&catalogCmd{}, "catalog")
	c.Register(&valueCmd{}, "catalog")

	c.Register(&migrateCmd{}, "storage")
	c.Register(&inventoryCmd{}, "storage")
}
