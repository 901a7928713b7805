package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/cli/add"
	"github.com/GustavoCaso/expensetrack/internal/cli/category"
	"github.com/GustavoCaso/expensetrack/internal/cli/chart"
	"github.com/GustavoCaso/expensetrack/internal/cli/delete"
	"github.com/GustavoCaso/expensetrack/internal/cli/export"
	importCmd "github.com/GustavoCaso/expensetrack/internal/cli/import"
	"github.com/GustavoCaso/expensetrack/internal/cli/report"
	"github.com/GustavoCaso/expensetrack/internal/cli/search"
	"github.com/GustavoCaso/expensetrack/internal/config"
	"github.com/GustavoCaso/expensetrack/internal/logger"
)

var configPath string
var dataFile string

var subcommands = map[string]cli.Command{
	"add":      add.NewCommand(),
	"category": category.NewCommand(),
	"chart":    chart.NewCommand(),
	"delete":   delete.NewCommand(),
	"export":   export.NewCommand(),
	"import":   importCmd.NewCommand(),
	"report":   report.NewCommand(),
	"search":   search.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", os.Getenv("EXPENSETRACK_CONFIG"), "Configuration file (TOML or YAML)")
		fset.StringVar(&dataFile, "f", "", "CSV or JSON file with the expenses, sample data when empty")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	// ExitOnError handles parse failures
	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration. %s\n", err.Error())
		os.Exit(1)
	}
	if dataFile != "" {
		conf.DataFile = dataFile
	}

	appLogger := logger.New(conf.Logger).Component(commandName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := cli.NewEnv(ctx, conf, appLogger, os.Stdout, time.Now())
	if err != nil {
		stop()
		appLogger.Fatal("Unable to load expenses", "error", err.Error())
	}

	if err := command.Run(ctx, env); err != nil {
		stop()
		appLogger.Fatal("Command failed", "command", commandName, "error", err.Error())
	}
}

func printHelp() {
	printUsage()

	names := maps.Keys(subcommands)
	slices.Sort(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: expensetrack <subcommand> [flags]\n\n")
}
