package tui

import (
	"strings"

	"titlefix/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red

	ColorBorderLight = lipgloss.Color("#9CA3AF") // Light gray
	ColorBackground  = lipgloss.Color("#1F2937") // Dark gray
	ColorText        = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Gray
	ColorSelected    = lipgloss.Color("#7C3AED") // Purple
	ColorModified    = lipgloss.Color("#F59E0B") // Amber
)

type Theme struct {
	HeaderStyle     lipgloss.Style
	NormalTextStyle lipgloss.Style
	MutedTextStyle  lipgloss.Style

	SelectedItemStyle lipgloss.Style
	StatusBarStyle    lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
	ModifiedStyle     lipgloss.Style
	HelpStyle         lipgloss.Style
	KeyStyle          lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1),

		NormalTextStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		MutedTextStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		SelectedItemStyle: lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true),

		StatusBarStyle: lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText).
			Padding(0, 1),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		ModifiedStyle: lipgloss.NewStyle().
			Foreground(ColorModified).
			Bold(true),

		HelpStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true),

		KeyStyle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
	}
}

// PlainTheme renders text without any styling.
func PlainTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		HeaderStyle:       plain,
		NormalTextStyle:   plain,
		MutedTextStyle:    plain,
		SelectedItemStyle: plain,
		StatusBarStyle:    plain,
		ErrorStyle:        plain,
		SuccessStyle:      plain,
		ModifiedStyle:     plain,
		HelpStyle:         plain,
		KeyStyle:          plain,
	}
}

const (
	IconCheck      = "✓"
	IconCross      = "✗"
	IconArrowRight = "▶"
	IconChange     = "->"
)

// SuccessText prefixes text with a check mark.
func SuccessText(text string, theme *Theme) string {
	return theme.SuccessStyle.Render(IconCheck + " " + text)
}

// ErrorText prefixes text with a cross.
func ErrorText(text string, theme *Theme) string {
	return theme.ErrorStyle.Render(IconCross + " " + text)
}

// ChangeLine renders `"orig" -> "new"`.
func ChangeLine(original, formatted string, theme *Theme) string {
	return theme.MutedTextStyle.Render(utils.Quoted(original)) +
		" " + theme.KeyStyle.Render(IconChange) + " " +
		theme.ModifiedStyle.Render(utils.Quoted(formatted))
}

func KeptLine(original string, theme *Theme) string {
	return theme.MutedTextStyle.Render("Keeping original title " + utils.Quoted(original))
}

func KeyHelp(key, description string, theme *Theme) string {
	return theme.KeyStyle.Render(key) + " " + theme.HelpStyle.Render(description)
}

func Separator(width int, char string, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(char, width))
}
