package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todor/internal/cli"
	"github.com/idilsaglam/todor/internal/config"
	"github.com/idilsaglam/todor/internal/logger"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group print output by pending/done")
	flag.Parse()

	cfg := config.Get()
	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.Options{Group: *groupPending}))
}
