// Package category guesses an expense category from its description using
// regular expression rules.
package category

import (
	"fmt"
	"regexp"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// Rule maps descriptions matching Pattern to Category.
type Rule struct {
	Category expense.Category
	Pattern  string
}

// DefaultRules cover the descriptions commonly seen on the dashboard.
var DefaultRules = []Rule{
	{Category: expense.Food, Pattern: `grocer|restaurant|dinner|lunch|breakfast|food|bakery|coffee|cafe`},
	{Category: expense.Transportation, Pattern: `\bgas\b|fuel|uber|taxi|bus|train|metro|parking`},
	{Category: expense.Entertainment, Pattern: `netflix|spotify|movie|cinema|concert|theater|game`},
	{Category: expense.Health, Pattern: `gym|pharmacy|doctor|dentist|hospital|health`},
	{Category: expense.Education, Pattern: `book|course|tuition|school|class`},
	{Category: expense.Utilities, Pattern: `electric|water|internet|phone|utility|bill`},
}

type matcher struct {
	re       *regexp.Regexp
	category expense.Category
}

type Matcher struct {
	matchers []matcher
}

// NewMatcher compiles rules in order. Matching ignores case.
func NewMatcher(rules []Rule) (*Matcher, error) {
	matchers := make([]matcher, len(rules))

	for i, rule := range rules {
		if !rule.Category.Valid() {
			return nil, fmt.Errorf("rule %d: %w: %q", i, expense.ErrUnknownCategory, rule.Category)
		}

		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d for %s: invalid pattern: %w", i, rule.Category, err)
		}

		matchers[i] = matcher{
			re:       re,
			category: rule.Category,
		}
	}

	return &Matcher{
		matchers: matchers,
	}, nil
}

// RulesFromPatterns turns a category name to pattern map into rules ordered
// like expense.Categories. Unknown category names are rejected.
func RulesFromPatterns(patterns map[string]string) ([]Rule, error) {
	byCategory := make(map[expense.Category]string, len(patterns))
	for name, pattern := range patterns {
		c, err := expense.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		byCategory[c] = pattern
	}

	rules := make([]Rule, 0, len(byCategory))
	for _, c := range expense.Categories {
		if pattern, ok := byCategory[c]; ok {
			rules = append(rules, Rule{Category: c, Pattern: pattern})
		}
	}

	return rules, nil
}

// Match returns the category of the first rule matching description.
func (m *Matcher) Match(description string) (expense.Category, bool) {
	for _, matcher := range m.matchers {
		if matcher.re.MatchString(description) {
			return matcher.category, true
		}
	}

	return "", false
}

// MatchOrOther is Match falling back to expense.Other.
func (m *Matcher) MatchOrOther(description string) expense.Category {
	if c, ok := m.Match(description); ok {
		return c
	}
	return expense.Other
}
