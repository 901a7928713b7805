// Package clitest builds command environments for subcommand tests.
package clitest

import (
	"bytes"
	"testing"

	"github.com/GustavoCaso/expensetrack/internal/category"
	"github.com/GustavoCaso/expensetrack/internal/cli"
	"github.com/GustavoCaso/expensetrack/internal/config"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
	"github.com/GustavoCaso/expensetrack/internal/session"
	"github.com/GustavoCaso/expensetrack/internal/testutil"
)

// NewEnv returns an environment over records with the default config,
// ids continuing after "100", the testutil.Now clock and output captured in
// the returned buffer.
func NewEnv(t *testing.T, records []expense.Expense) (cli.Env, *bytes.Buffer) {
	t.Helper()

	matcher, err := category.NewMatcher(category.DefaultRules)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	log := testutil.TestLogger(t)
	out := &bytes.Buffer{}

	return cli.Env{
		Config:  config.Default(),
		Session: session.New(records, session.Options{IDs: ledger.NewSequenceGenerator(100), Logger: log}),
		Matcher: matcher,
		Logger:  log,
		Out:     out,
		Now:     testutil.Now,
	}, out
}
