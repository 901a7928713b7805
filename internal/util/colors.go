package util

import "github.com/fatih/color"

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"cyan":      color.FgCyan,
	"underline": color.Underline,
	"bold":      color.Bold,
}

// ColorOutput wraps text in the named attributes. Unknown names are ignored
// and color.NoColor disables every attribute.
func ColorOutput(text string, colorOptions ...string) string {
	attributes := make([]color.Attribute, 0, len(colorOptions))
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	return color.New(attributes...).Sprint(text)
}

// TrendColor picks the colour for a month over month change: spending more
// is red, spending less is green.
func TrendColor(trend float64) string {
	switch {
	case trend > 0:
		return "red"
	case trend < 0:
		return "green"
	default:
		return ""
	}
}
