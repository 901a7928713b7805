package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"text/template"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/util"
)

var templateFuncs = template.FuncMap{
	"formatMoney":   util.FormatMoney,
	"formatPercent": util.FormatPercent,
	"colorOutput":   util.ColorOutput,
	"trendColor":    util.TrendColor,
	"formatDate": func(t time.Time) string {
		return t.Format(expense.DateLayout)
	},
}

// RenderTemplate executes templates/<name> from content into out.
func RenderTemplate(content fs.FS, out io.Writer, name string, value any) error {
	tmpl, err := fs.ReadFile(content, path.Join("templates", name))
	if err != nil {
		return err
	}

	t, err := template.New(name).Funcs(templateFuncs).Parse(string(tmpl))
	if err != nil {
		return fmt.Errorf("invalid template %s: %w", name, err)
	}

	return t.Execute(out, value)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// CreateOutput opens location for writing, or returns fallback when
// location is empty.
func CreateOutput(location string, fallback io.Writer) (io.WriteCloser, error) {
	if location == "" {
		return nopCloser{fallback}, nil
	}

	f, err := os.Create(location)
	if err != nil {
		return nil, fmt.Errorf("unable to create output file: %w", err)
	}
	return f, nil
}
