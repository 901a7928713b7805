package search

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/GustavoCaso/expensetrack/internal/cli/clitest"
	"github.com/GustavoCaso/expensetrack/internal/testutil"
)

func runSearch(t *testing.T, args ...string) (string, error) {
	t.Helper()

	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
	color.NoColor = true

	cmd := NewCommand()
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	env, out := clitest.NewEnv(t, testutil.DashboardExpenses(t))
	err := cmd.Run(context.Background(), env)

	return out.String(), err
}

func lines(output string) []string {
	return strings.Split(strings.TrimSpace(output), "\n")
}

func TestSearchCommand(t *testing.T) {
	output, err := runSearch(t, "-q", "gas")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := lines(output)
	if got[0] != "Showing 1 of 8 expenses (1 active filters)" {
		t.Errorf("header = %q", got[0])
	}
	if len(got) != 2 || !strings.Contains(got[1], "Gas") || !strings.Contains(got[1], "$45.00") {
		t.Errorf("unexpected results:\n%s", output)
	}
}

func TestSearchCommandSort(t *testing.T) {
	tests := []struct {
		sort  string
		first string
		last  string
	}{
		{sort: "date:desc", first: "Grocery Shopping", last: "Movie Tickets"},
		{sort: "date:asc", first: "Movie Tickets", last: "Grocery Shopping"},
		{sort: "amount:desc", first: "Grocery Shopping", last: "Netflix Subscription"},
		{sort: "amount:asc", first: "Netflix Subscription", last: "Grocery Shopping"},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			output, err := runSearch(t, "-sort", tt.sort)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			got := lines(output)
			if len(got) != 9 {
				t.Fatalf("expected header and 8 rows, got %d lines:\n%s", len(got), output)
			}
			if !strings.Contains(got[1], tt.first) {
				t.Errorf("first row = %q, want %s", got[1], tt.first)
			}
			if !strings.Contains(got[8], tt.last) {
				t.Errorf("last row = %q, want %s", got[8], tt.last)
			}
		})
	}
}

func TestSearchCommandFilters(t *testing.T) {
	output, err := runSearch(t, "-category", "Entertainment", "-payment", "credit_card", "-from", "2025-10-01")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := lines(output)
	if got[0] != "Showing 1 of 8 expenses (3 active filters)" {
		t.Errorf("header = %q", got[0])
	}
	if !strings.Contains(output, "Netflix Subscription") {
		t.Errorf("expected Netflix Subscription:\n%s", output)
	}

	output, err = runSearch(t, "-min", "900")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(output, "No expenses match the current filters.") {
		t.Errorf("expected empty result message:\n%s", output)
	}
}

func TestSearchCommandInvalidSort(t *testing.T) {
	if _, err := runSearch(t, "-sort", "name:asc"); err == nil {
		t.Error("expected error for invalid sort")
	}
}
