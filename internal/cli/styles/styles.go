// Package styles renders the human-readable CLI output
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette
const (
	Accent    = "#874BFD"
	Title     = "#D75FD7"
	Subtle    = "#585858"
	Normal    = "#D0D0D0"
	InfoFg    = "#00AFFF"
	InfoBg    = "#00005F"
	WarningFg = "#FFD700"
	WarningBg = "#875F00"
	ErrorFg   = "#FF0000"
	ErrorBg   = "#5F0000"
)

// CardWidth is the outer width of RenderCard
var CardWidth = 64

var (
	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Accent)).
			Padding(1, 2).
			Width(CardWidth)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Title))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Subtle))

	LabelStyle = lipgloss.NewStyle(). // For field labels like "Revenue"
			Bold(true).
			Foreground(lipgloss.Color(Accent))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Normal))

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(InfoFg)).
			Background(lipgloss.Color(InfoBg)).
			Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(WarningFg)).
			Background(lipgloss.Color(WarningBg)).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ErrorFg)).
			Background(lipgloss.Color(ErrorBg)).
			Padding(0, 1)
)

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content) + "\n"
}

// Field renders one "label  value" row with the label padded to width
func Field(label string, width int, value string) string {
	pad := max(width-len(label), 0)
	return LabelStyle.Render(label) + strings.Repeat(" ", pad+2) + ValueStyle.Render(value)
}

// Success renders a one-line confirmation
func Success(msg string) string {
	return SuccessStyle.Render("✓ "+msg) + "\n"
}

// Warning renders a one-line notice
func Warning(msg string) string {
	return WarningStyle.Render(msg) + "\n"
}

// Subtitle renders secondary detail lines
func Subtitle(msg string) string {
	return SubtitleStyle.Render(msg) + "\n"
}
