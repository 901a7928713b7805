// Package session keeps the working state of one dashboard: the expense
// list, the filter criteria and the filtered view derived from both.
//
// A Session belongs to a single caller and is not safe for concurrent use.
package session

import (
	"slices"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/chart"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/filter"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
	"github.com/GustavoCaso/expensetrack/internal/logger"
	"github.com/GustavoCaso/expensetrack/internal/report"
)

// Scope selects which list derived values are computed from.
type Scope int

const (
	ScopeVisible Scope = iota
	ScopeAll
)

// Options configures a new session. MinAmount and MaxAmount are the default
// amount bounds when HasAmountRange is set; otherwise the filter package
// defaults apply.
type Options struct {
	IDs            ledger.IDGenerator
	HasAmountRange bool
	MinAmount      int64
	MaxAmount      int64
	Logger         *logger.Logger
}

type Session struct {
	records  []expense.Expense
	criteria filter.Criteria
	visible  []expense.Expense

	ids        ledger.IDGenerator
	defaultMin int64
	defaultMax int64
	logger     *logger.Logger
}

// New starts a session over records with default criteria.
func New(records []expense.Expense, opts Options) *Session {
	if opts.IDs == nil {
		opts.IDs = ledger.UUIDGenerator{}
	}
	if !opts.HasAmountRange {
		opts.MinAmount, opts.MaxAmount = filter.DefaultMinAmount, filter.DefaultMaxAmount
	}

	s := &Session{
		records:    slices.Clone(records),
		ids:        opts.IDs,
		defaultMin: opts.MinAmount,
		defaultMax: opts.MaxAmount,
		logger:     opts.Logger,
	}
	s.criteria = filter.WithAmountRange(s.defaultMin, s.defaultMax)
	s.refresh()

	return s
}

// All returns a copy of every record.
func (s *Session) All() []expense.Expense {
	return slices.Clone(s.records)
}

// Visible returns a copy of the records matching the current criteria.
func (s *Session) Visible() []expense.Expense {
	return slices.Clone(s.visible)
}

// Criteria returns a copy of the current criteria.
func (s *Session) Criteria() filter.Criteria {
	return s.criteria.Clone()
}

// ActiveFilters counts the constraints that narrow the visible list.
func (s *Session) ActiveFilters() int {
	return s.criteria.ActiveCount(s.defaultMin, s.defaultMax)
}

func (s *Session) SetCriteria(c filter.Criteria) {
	s.criteria = c.Clone()
	s.refresh()
}

func (s *Session) SetSearchTerm(term string) {
	s.criteria.SearchTerm = term
	s.refresh()
}

func (s *Session) ToggleCategory(category expense.Category) {
	s.criteria.ToggleCategory(category)
	s.refresh()
}

func (s *Session) TogglePaymentMethod(method expense.PaymentMethod) {
	s.criteria.TogglePaymentMethod(method)
	s.refresh()
}

func (s *Session) SetAmountRange(minAmount, maxAmount int64) {
	s.criteria.SetAmountRange(minAmount, maxAmount)
	s.refresh()
}

// SetDateRange sets the date bounds; bad input leaves that bound unset.
func (s *Session) SetDateRange(start, end string) {
	s.criteria.SetDateRange(start, end)
	s.refresh()
}

func (s *Session) ApplyPreset(preset filter.Preset, now time.Time) {
	s.criteria = filter.ApplyPreset(s.criteria, preset, now)
	s.refresh()
}

// ResetFilters restores the criteria the session started with.
func (s *Session) ResetFilters() {
	s.criteria = filter.WithAmountRange(s.defaultMin, s.defaultMax)
	s.refresh()
}

// Add stores a new expense and returns it with its assigned id.
func (s *Session) Add(draft expense.Draft) expense.Expense {
	var created expense.Expense
	s.records, created = ledger.Add(s.records, draft, s.ids)
	s.refresh()

	s.debug("expense added", "id", created.ID(), "amount", created.Amount())
	return created
}

// Update replaces the expense with the same id. It returns
// ledger.ErrNotFound when there is none.
func (s *Session) Update(replacement expense.Expense) error {
	records, err := ledger.Update(s.records, replacement)
	if err != nil {
		s.debug("expense update skipped", "id", replacement.ID(), "error", err)
		return err
	}

	s.records = records
	s.refresh()

	s.debug("expense updated", "id", replacement.ID())
	return nil
}

// Delete removes the expense with the given id. It returns
// ledger.ErrNotFound when there is none.
func (s *Session) Delete(id string) error {
	records, err := ledger.Remove(s.records, id)
	if err != nil {
		s.debug("expense delete skipped", "id", id, "error", err)
		return err
	}

	s.records = records
	s.refresh()

	s.debug("expense deleted", "id", id)
	return nil
}

// Summary computes the analytics cards over the chosen scope.
func (s *Session) Summary(scope Scope) report.Summary {
	return report.Summarize(s.scoped(scope))
}

// PieSeries returns the category breakdown chart data over the chosen scope.
func (s *Session) PieSeries(scope Scope) ([]chart.PieSlice, bool) {
	return chart.PieSeries(report.CategoryTotals(s.scoped(scope)))
}

// LineSeries returns the monthly trend chart data over the chosen scope.
func (s *Session) LineSeries(scope Scope) ([]chart.LinePoint, bool) {
	return chart.LineSeries(report.MonthlyTotals(s.scoped(scope)))
}

func (s *Session) scoped(scope Scope) []expense.Expense {
	if scope == ScopeAll {
		return s.records
	}
	return s.visible
}

func (s *Session) refresh() {
	s.visible = filter.Filter(s.records, s.criteria)
}

func (s *Session) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
