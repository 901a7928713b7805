package delete

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/export"
)

type deleteCommand struct {
	ids            string
	outputLocation string
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Deletes expenses by id and writes the remaining ones as CSV"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ids, "id", "", "comma separated ids to delete")
	fs.StringVar(&c.outputLocation, "o", "", "Where to write the remaining expenses, stdout when empty")
}

func (c *deleteCommand) Run(_ context.Context, env cli.Env) error {
	ids := strings.FieldsFunc(c.ids, func(r rune) bool { return r == ',' || r == ' ' })
	if len(ids) == 0 {
		return errors.New("you must provide at least one id to delete")
	}

	var errs []error
	for _, id := range ids {
		if err := env.Session.Delete(id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("unable to delete expenses: %w", err)
	}

	out, err := cli.CreateOutput(c.outputLocation, env.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	env.Logger.Info("Deleted expenses", "count", len(ids), "remaining", len(env.Session.All()))

	return export.CSV(out, env.Session.All())
}
