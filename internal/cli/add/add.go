package add

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/export"
)

type addCommand struct {
	description    string
	amount         string
	category       string
	date           string
	paymentMethod  string
	outputLocation string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Adds an expense and writes the resulting list as CSV"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "d", "", "expense description")
	fs.StringVar(&c.amount, "a", "", "amount in dollars")
	fs.StringVar(&c.category, "category", "", "category, guessed from the description when empty")
	fs.StringVar(&c.date, "date", "", "date of the expense (YYYY-MM-DD), today when empty")
	fs.StringVar(&c.paymentMethod, "payment", string(expense.CreditCard), "payment method")
	fs.StringVar(&c.outputLocation, "o", "", "Where to write the expenses, stdout when empty")
}

func (c *addCommand) draft(env cli.Env) (expense.Draft, error) {
	if c.description == "" {
		return expense.Draft{}, errors.New("you must provide a description")
	}

	amount, err := expense.ParseAmount(c.amount)
	if err != nil {
		return expense.Draft{}, err
	}

	date := expense.Day(env.Now)
	if c.date != "" {
		if date, err = expense.ParseDate(c.date); err != nil {
			return expense.Draft{}, err
		}
	}

	method, err := expense.ParsePaymentMethod(c.paymentMethod)
	if err != nil {
		return expense.Draft{}, err
	}

	category := env.Matcher.MatchOrOther(c.description)
	if c.category != "" {
		if category, err = expense.ParseCategory(c.category); err != nil {
			return expense.Draft{}, err
		}
	}

	return expense.Draft{
		Description:   c.description,
		Amount:        amount,
		Category:      category,
		Date:          date,
		PaymentMethod: method,
	}, nil
}

func (c *addCommand) Run(_ context.Context, env cli.Env) error {
	draft, err := c.draft(env)
	if err != nil {
		return fmt.Errorf("invalid expense: %w", err)
	}

	created := env.Session.Add(draft)
	env.Logger.Info("Added expense", "id", created.ID(), "category", created.Category())

	out, err := cli.CreateOutput(c.outputLocation, env.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return export.CSV(out, env.Session.All())
}
