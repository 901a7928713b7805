package filter

import (
	"fmt"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// Preset is a quick date range relative to today.
type Preset string

const (
	PresetAll   Preset = "all"
	PresetWeek  Preset = "week"
	PresetMonth Preset = "month"
)

const (
	weekDays  = 7
	monthDays = 30
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetAll, PresetWeek, PresetMonth:
		return p, nil
	default:
		return "", fmt.Errorf("invalid date range: %s (must be all, week or month)", s)
	}
}

// ApplyPreset replaces the date bounds of c with the preset range ending on
// now's calendar day. PresetAll clears both bounds.
func ApplyPreset(c Criteria, preset Preset, now time.Time) Criteria {
	c = c.Clone()
	today := expense.Day(now)

	switch preset {
	case PresetWeek:
		start := today.AddDate(0, 0, -weekDays)
		c.StartDate, c.EndDate = &start, &today
	case PresetMonth:
		start := today.AddDate(0, 0, -monthDays)
		c.StartDate, c.EndDate = &start, &today
	case PresetAll:
		c.StartDate, c.EndDate = nil, nil
	}

	return c
}
