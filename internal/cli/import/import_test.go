package importcmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GustavoCaso/expensetrack/internal/cli/clitest"
)

const importData = `description,amount,category,date,payment_method
Netflix,15.99,,2025-10-20,credit card
Lunch,abc,Food,2025-10-21,Cash
`

func runImport(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewCommand()
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	env, out := clitest.NewEnv(t, nil)
	err := cmd.Run(context.Background(), env)

	return out.String(), err
}

func writeImportFile(t *testing.T) string {
	t.Helper()

	location := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(location, []byte(importData), 0600); err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}
	return location
}

func TestImportCommand(t *testing.T) {
	output, err := runImport(t, "-i", writeImportFile(t))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(output, "Total expenses imported: 1") {
		t.Errorf("missing total in output:\n%s", output)
	}
	if !strings.Contains(output, "Errors importing row 2: invalid amount") {
		t.Errorf("missing row error in output:\n%s", output)
	}
}

func TestImportCommandOutputFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "expenses.csv")

	if _, err := runImport(t, "-i", writeImportFile(t), "-o", location); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	content, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", content)
	}
	if !strings.HasSuffix(lines[1], ",2025-10-20,Netflix,15.99,Entertainment,Credit Card") {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestImportCommandErrors(t *testing.T) {
	if _, err := runImport(t); err == nil {
		t.Error("expected error when no file is given")
	}

	if _, err := runImport(t, "-i", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
