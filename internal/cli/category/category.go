package category

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/export"
	"github.com/GustavoCaso/expensetrack/internal/util"
)

const (
	actionInspect      = "inspect"
	actionRecategorize = "recategorize"
)

type categoryCommand struct {
	action         string
	outputLocation string
}

func NewCommand() cli.Command {
	return &categoryCommand{}
}

func (c *categoryCommand) Description() string {
	return "Inspects expenses filed under Other and recategorizes them with the configured patterns"
}

func (c *categoryCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.action, "a", actionInspect, "What action to perform. Supported values are: inspect, recategorize")
	fs.StringVar(&c.outputLocation, "o", "", "Where to write the output, stdout when empty")
}

func (c *categoryCommand) Run(_ context.Context, env cli.Env) error {
	if c.action != actionInspect && c.action != actionRecategorize {
		return fmt.Errorf("unsupported action: %s", c.action)
	}

	out, err := cli.CreateOutput(c.outputLocation, env.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	if c.action == actionInspect {
		inspect(out, env, uncategorized(env.Session.All()))
		return nil
	}

	return recategorize(out, env)
}

func uncategorized(records []expense.Expense) []expense.Expense {
	return slices.DeleteFunc(records, func(e expense.Expense) bool {
		return e.Category() != expense.Other
	})
}

type group struct {
	count    int
	expenses []expense.Expense
}

func inspect(writer io.Writer, env cli.Env, expenses []expense.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(writer, "No expenses without category 🎉")
		return
	}

	grouped := map[string]group{}
	for _, ex := range expenses {
		g := grouped[ex.Description()]
		g.count++
		g.expenses = append(g.expenses, ex)
		grouped[ex.Description()] = g
	}

	keys := maps.Keys(grouped)
	slices.Sort(keys)
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(grouped[b].count, grouped[a].count)
	})

	for _, k := range keys {
		suggestion := "no match"
		if c, ok := env.Matcher.Match(k); ok {
			suggestion = util.ColorOutput(c.String(), "green")
		}
		fmt.Fprintf(writer, "%s -> %d (%s)\n", k, grouped[k].count, suggestion)

		for _, ex := range grouped[k].expenses {
			fmt.Fprintf(writer, "\t[%s] %s%s\n", ex.Date().Format(expense.DateLayout), env.Config.Currency, util.FormatMoney(ex.Amount(), ",", "."))
		}
	}

	fmt.Fprintf(writer, "\nThere are a total of %d uncategorized expenses\n", len(expenses))
}

// recategorize files every Other expense the matcher recognises under its
// matched category and writes the updated list as CSV.
func recategorize(writer io.Writer, env cli.Env) error {
	updated := 0
	for _, ex := range uncategorized(env.Session.All()) {
		c, ok := env.Matcher.Match(ex.Description())
		if !ok {
			continue
		}

		draft := ex.Draft()
		draft.Category = c
		if err := env.Session.Update(expense.New(ex.ID(), draft)); err != nil {
			return fmt.Errorf("unexpected error updating %s: %w", ex.ID(), err)
		}
		updated++
	}

	if updated == 0 {
		env.Logger.Info("No expenses that could recategorize")
	} else {
		env.Logger.Info("Recategorized expenses", "count", updated)
	}

	return export.CSV(writer, env.Session.All())
}
