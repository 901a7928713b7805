package cli

import (
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/filter"
	"github.com/GustavoCaso/expensetrack/internal/util"
)

// FilterFlags are the filter options shared by every listing subcommand.
type FilterFlags struct {
	Search         string
	Categories     string
	PaymentMethods string
	MinAmount      string
	MaxAmount      string
	From           string
	To             string
	Range          string
	Month          string
	Year           int
}

func (f *FilterFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Search, "q", "", "only expenses whose description contains the text")
	fs.StringVar(&f.Categories, "category", "", "comma separated categories to include")
	fs.StringVar(&f.PaymentMethods, "payment", "", "comma separated payment methods to include")
	fs.StringVar(&f.MinAmount, "min", "", "minimum amount in dollars")
	fs.StringVar(&f.MaxAmount, "max", "", "maximum amount in dollars")
	fs.StringVar(&f.From, "from", "", "first day to include (YYYY-MM-DD)")
	fs.StringVar(&f.To, "to", "", "last day to include (YYYY-MM-DD)")
	fs.StringVar(&f.Range, "range", "", "quick date range: all, week or month")
	fs.StringVar(&f.Month, "month", "", "only expenses of the month (YYYY-MM)")
	fs.IntVar(&f.Year, "year", 0, "only expenses of the year")
}

// Values encodes the flags as filter query parameters. -month and -year
// fill the date bounds that -from and -to leave empty.
func (f *FilterFlags) Values() (url.Values, error) {
	values := url.Values{}

	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set(filter.KeySearch, f.Search)
	set(filter.KeyCategory, f.Categories)
	set(filter.KeyPaymentMethod, f.PaymentMethods)
	set(filter.KeyAmountMin, f.MinAmount)
	set(filter.KeyAmountMax, f.MaxAmount)
	set(filter.KeyRange, f.Range)

	from, to := f.From, f.To

	var start, end time.Time
	switch {
	case f.Month != "":
		var err error
		start, end, err = util.MonthDates(f.Month)
		if err != nil {
			return nil, err
		}
	case f.Year > 0:
		start, end = util.YearDates(f.Year)
	}

	if !start.IsZero() {
		if from == "" {
			from = start.Format(expense.DateLayout)
		}
		if to == "" {
			to = end.Format(expense.DateLayout)
		}
	}

	set(filter.KeyDateFrom, from)
	set(filter.KeyDateTo, to)

	return values, nil
}

// Apply sets the session criteria from the flags. Values that cannot be
// understood are logged and skipped.
func (f *FilterFlags) Apply(env Env) error {
	values, err := f.Values()
	if err != nil {
		return fmt.Errorf("invalid filter flags: %w", err)
	}

	criteria, err := filter.ParseCriteria(values, env.Session.Criteria(), env.Now)
	if err != nil {
		env.Logger.Warn("Ignoring filter values", "error", err)
	}

	env.Session.SetCriteria(criteria)
	env.Logger.Debug("Filters applied", "active", env.Session.ActiveFilters(), "visible", len(env.Session.Visible()))

	return nil
}
