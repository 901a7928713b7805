package util

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		thousand string
		decimal  string
		expected string
	}{
		{name: "dollar separators", value: 1234567, thousand: ",", decimal: ".", expected: "12,345.67"},
		{name: "euro separators", value: 1234567, thousand: ".", decimal: ",", expected: "12.345,67"},
		{name: "negative value", value: -1234567, thousand: ",", decimal: ".", expected: "-12,345.67"},
		{name: "zero value", value: 0, thousand: ",", decimal: ".", expected: "0.00"},
		{name: "value less than 100", value: 99, thousand: ",", decimal: ".", expected: "0.99"},
		{name: "exact thousand", value: 100000, thousand: ",", decimal: ".", expected: "1,000.00"},
		{name: "large value", value: 1234567890, thousand: ",", decimal: ".", expected: "12,345,678.90"},
		{name: "no thousands separator", value: 1234, thousand: "", decimal: ",", expected: "12,34"},
		{name: "dashboard total", value: 49678, thousand: ",", decimal: ".", expected: "496.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatMoney(tt.value, tt.thousand, tt.decimal)
			if result != tt.expected {
				t.Errorf("FormatMoney() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "+0.0%"},
		{value: 12.54, expected: "+12.5%"},
		{value: 966.2914, expected: "+966.3%"},
		{value: -3, expected: "-3.0%"},
		{value: -56.75, expected: "-56.8%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatPercent(tt.value); got != tt.expected {
				t.Errorf("FormatPercent(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
