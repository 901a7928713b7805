package search

import (
	"context"
	"embed"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/filter"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type searchCommand struct {
	filters cli.FilterFlags
	sort    string
}

func NewCommand() cli.Command {
	return &searchCommand{}
}

func (c *searchCommand) Description() string {
	return "Lists the expenses matching the filters"
}

func (c *searchCommand) SetFlags(fs *flag.FlagSet) {
	c.filters.SetFlags(fs)
	fs.StringVar(&c.sort, "sort", filter.DefaultSortOptions().String(), "sort order as field:direction, field date or amount")
}

type view struct {
	Currency      string
	ActiveFilters int
	Total         int
	Expenses      []expense.Expense
}

func (c *searchCommand) Run(_ context.Context, env cli.Env) error {
	opts, err := filter.ParseSort(c.sort)
	if err != nil {
		return err
	}

	if err := c.filters.Apply(env); err != nil {
		return err
	}

	v := view{
		Currency:      env.Config.Currency,
		ActiveFilters: env.Session.ActiveFilters(),
		Total:         len(env.Session.All()),
		Expenses:      filter.Sort(env.Session.Visible(), opts),
	}

	if err := cli.RenderTemplate(content, env.Out, "search.tmpl", v); err != nil {
		return fmt.Errorf("unable to render search results: %w", err)
	}

	return nil
}
