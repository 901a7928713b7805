package util

import (
	"errors"
	"testing"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

func TestMonthDates(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "January 2024",
			key:           "2024-01",
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "February 2024 (leap year)",
			key:           "2024-02",
			expectedStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "December 2025",
			key:           "2025-12",
			expectedStart: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthDates(tt.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.expectedStart) {
				t.Errorf("start = %v, want %v", start, tt.expectedStart)
			}
			if !end.Equal(tt.expectedEnd) {
				t.Errorf("end = %v, want %v", end, tt.expectedEnd)
			}
		})
	}

	if _, _, err := MonthDates("October"); !errors.Is(err, expense.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestYearDates(t *testing.T) {
	start, end := YearDates(2025)

	if !start.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}
