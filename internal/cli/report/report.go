package report

import (
	"context"
	"embed"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	internalReport "github.com/GustavoCaso/expensetrack/internal/report"
	"github.com/GustavoCaso/expensetrack/internal/session"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	filters cli.FilterFlags
	all     bool
	verbose bool
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Displays the analytics summary and category breakdown of the filtered expenses"
}

func (c *reportCommand) SetFlags(fs *flag.FlagSet) {
	c.filters.SetFlags(fs)
	fs.BoolVar(&c.all, "all", false, "report over every expense, ignoring the filters")
	fs.BoolVar(&c.verbose, "v", false, "list the expenses of each category")
}

type view struct {
	Currency      string
	Scope         string
	ActiveFilters int
	Summary       internalReport.Summary
	Categories    []internalReport.Category
	Verbose       bool
}

func (c *reportCommand) Run(_ context.Context, env cli.Env) error {
	if err := c.filters.Apply(env); err != nil {
		return err
	}

	scope, scopeName := session.ScopeVisible, "filtered"
	records := env.Session.Visible()
	if c.all {
		scope, scopeName = session.ScopeAll, "all"
		records = env.Session.All()
	}

	v := view{
		Currency:      env.Config.Currency,
		Scope:         scopeName,
		ActiveFilters: env.Session.ActiveFilters(),
		Summary:       env.Session.Summary(scope),
		Categories:    internalReport.Breakdown(records),
		Verbose:       c.verbose,
	}

	if err := cli.RenderTemplate(content, env.Out, "report.tmpl", v); err != nil {
		return fmt.Errorf("unable to render report: %w", err)
	}

	return nil
}
