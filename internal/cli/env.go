package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/config"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	importutil "github.com/GustavoCaso/expensetrack/internal/import"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
	"github.com/GustavoCaso/expensetrack/internal/logger"
	"github.com/GustavoCaso/expensetrack/internal/session"
)

// NewEnv loads the configured data file, or the sample data when none is
// set, and opens a session over it.
func NewEnv(ctx context.Context, conf *config.Config, log *logger.Logger, out io.Writer, now time.Time) (Env, error) {
	matcher, err := conf.CategoryMatcher()
	if err != nil {
		return Env{}, err
	}

	minAmount, maxAmount, err := conf.AmountRange()
	if err != nil {
		return Env{}, err
	}

	env := Env{
		Config:  conf,
		Matcher: matcher,
		Logger:  log,
		Out:     out,
		Now:     now,
	}

	records, err := env.loadExpenses(ctx)
	if err != nil {
		return Env{}, err
	}

	env.Session = session.New(records, session.Options{
		IDs:            ledger.UUIDGenerator{},
		HasAmountRange: true,
		MinAmount:      minAmount,
		MaxAmount:      maxAmount,
		Logger:         log.Component("session"),
	})

	return env, nil
}

func (e Env) loadExpenses(ctx context.Context) ([]expense.Expense, error) {
	if e.Config.DataFile == "" {
		e.Logger.Debug("No data file configured, using sample data")
		return importutil.Sample(), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(e.Config.DataFile)
	if err != nil {
		return nil, fmt.Errorf("unable to open data file: %w", err)
	}
	defer file.Close()

	mapper := importutil.NewMapper(e.Matcher, ledger.UUIDGenerator{})
	result, err := mapper.Load(e.Config.DataFile, file)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", e.Config.DataFile, err)
	}

	for _, rowErr := range result.Errors {
		e.Logger.Warn("Skipping invalid row", "file", e.Config.DataFile, "row", rowErr.Row, "error", rowErr.Err)
	}

	e.Logger.Info("Loaded expenses", "file", e.Config.DataFile, "count", len(result.Expenses), "skipped", len(result.Errors))

	return result.Expenses, nil
}
