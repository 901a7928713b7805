package chart

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	internalChart "github.com/GustavoCaso/expensetrack/internal/chart"
	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/session"
)

const (
	kindPie  = "pie"
	kindLine = "line"
	kindAll  = "all"
)

type chartCommand struct {
	filters cli.FilterFlags
	kind    string
	all     bool
}

func NewCommand() cli.Command {
	return &chartCommand{}
}

func (c *chartCommand) Description() string {
	return "Prints the category pie and monthly line chart series as JSON"
}

func (c *chartCommand) SetFlags(fs *flag.FlagSet) {
	c.filters.SetFlags(fs)
	fs.StringVar(&c.kind, "kind", kindAll, "series to print: pie, line or all")
	fs.BoolVar(&c.all, "all", false, "chart every expense, ignoring the filters")
}

// output keeps empty series as null so "nothing to draw" stays distinct
// from a series of zero values.
type output struct {
	Pie  []internalChart.PieSlice  `json:"pie,omitempty"`
	Line []internalChart.LinePoint `json:"line,omitempty"`
}

func (c *chartCommand) Run(_ context.Context, env cli.Env) error {
	if c.kind != kindPie && c.kind != kindLine && c.kind != kindAll {
		return fmt.Errorf("unsupported chart kind %q", c.kind)
	}

	if err := c.filters.Apply(env); err != nil {
		return err
	}

	scope := session.ScopeVisible
	if c.all {
		scope = session.ScopeAll
	}

	var out output
	if c.kind != kindLine {
		pie, ok := env.Session.PieSeries(scope)
		if !ok {
			env.Logger.Info("No category data to chart")
		}
		out.Pie = pie
	}
	if c.kind != kindPie {
		line, ok := env.Session.LineSeries(scope)
		if !ok {
			env.Logger.Info("No monthly data to chart")
		}
		out.Line = line
	}

	enc := json.NewEncoder(env.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("unable to write chart series: %w", err)
	}

	return nil
}
