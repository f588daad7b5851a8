package strength

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

// Style is the foreground style for the result's tier.
func (r Result) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(r.Hex)).Bold(true)
}

// Bar renders a fixed-width meter followed by the label and percent,
// e.g. "[##############------] Good (70%)". When color is false no ANSI
// sequences are emitted.
func (r Result) Bar(color bool) string {
	filled := int(r.Percent / 100 * barWidth)
	meter := "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
	text := fmt.Sprintf("%s %s (%s%%)", meter, r.Label, FormatPercent(r.Percent))
	if !color {
		return text
	}
	return r.Style().Render(text)
}

// FormatPercent drops a trailing ".0": 62.5 -> "62.5", 75 -> "75".
func FormatPercent(p float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", p), ".0")
}
