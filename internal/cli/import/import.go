package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/export"
	importutil "github.com/GustavoCaso/expensetrack/internal/import"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
)

type importCommand struct {
	importFile     string
	outputLocation string
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Checks a CSV or JSON file and converts its valid rows to the export CSV format"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.importFile, "i", "", "file to import")
	fs.StringVar(&c.outputLocation, "o", "", "file to write the valid expenses to as CSV")
}

func (c *importCommand) Run(ctx context.Context, env cli.Env) error {
	if c.importFile == "" {
		return errors.New("you must provide a file to import")
	}

	file, err := os.Open(c.importFile)
	if err != nil {
		return err
	}
	defer file.Close()

	mapper := importutil.NewMapper(env.Matcher, ledger.UUIDGenerator{})
	result, err := mapper.Load(c.importFile, file)
	if err != nil {
		return fmt.Errorf("unable to import expenses due to error: %w", err)
	}

	if len(result.Expenses) > 0 {
		fmt.Fprintf(env.Out, "Total expenses imported: %d\n", len(result.Expenses))
	} else {
		fmt.Fprintln(env.Out, "No expenses were imported")
	}
	for _, rowErr := range result.Errors {
		fmt.Fprintf(env.Out, "Errors importing %s\n", rowErr)
	}

	if c.outputLocation == "" || len(result.Expenses) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := cli.CreateOutput(c.outputLocation, env.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return export.CSV(out, result.Expenses)
}
