package export

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	internalExport "github.com/GustavoCaso/expensetrack/internal/export"
	"github.com/GustavoCaso/expensetrack/internal/filter"
)

type exportCommand struct {
	filters cli.FilterFlags
	output  string
	format  string
	sort    string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports the filtered expenses as CSV, JSON or XLSX"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	c.filters.SetFlags(fs)
	fs.StringVar(&c.output, "o", "", "file to write, stdout when empty")
	fs.StringVar(&c.format, "format", "csv", "output format: csv, json or xlsx (xlsx needs -o)")
	fs.StringVar(&c.sort, "sort", filter.DefaultSortOptions().String(), "sort order as field:direction")
}

func (c *exportCommand) Run(_ context.Context, env cli.Env) error {
	write, err := writer(c.format)
	if err != nil {
		return err
	}
	if strings.EqualFold(c.format, "xlsx") && c.output == "" {
		return errors.New("xlsx export needs an output file, use -o")
	}

	opts, err := filter.ParseSort(c.sort)
	if err != nil {
		return err
	}

	if err := c.filters.Apply(env); err != nil {
		return err
	}

	out, err := cli.CreateOutput(c.output, env.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	records := filter.Sort(env.Session.Visible(), opts)
	if err := write(out, records); err != nil {
		return err
	}

	if c.output != "" {
		env.Logger.Info("Exported expenses", "file", c.output, "count", len(records))
	}

	return nil
}

func writer(format string) (func(io.Writer, []expense.Expense) error, error) {
	switch strings.ToLower(format) {
	case "csv":
		return internalExport.CSV, nil
	case "json":
		return internalExport.JSON, nil
	case "xlsx":
		return internalExport.XLSX, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
