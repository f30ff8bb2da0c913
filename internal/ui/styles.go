package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green: success
	ColorWarning   = lipgloss.Color("#FFB800") // yellow: warnings, payable methods
	ColorError     = lipgloss.Color("#FF4444") // red: errors
	ColorSelector  = lipgloss.Color("#00B4D8") // cyan: selectors, addresses, hashes
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold: decoded values
	ColorMeta      = lipgloss.Color("#555555") // dim gray: metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue: UI chrome
	ColorType      = lipgloss.Color("#9B5DE5") // purple: Go and Solidity types
	ColorHighlight = lipgloss.Color("#F15BB5") // pink: headers, selected rows
)

// Base styles.
var (
	StyleSuccess  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleSelector = lipgloss.NewStyle().Foreground(ColorSelector)
	StyleValue    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta     = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleType     = lipgloss.NewStyle().Foreground(ColorType).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorType).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Selector formats a selector, address or hash.
func Selector(s string) string { return StyleSelector.Render(s) }

// Val formats a decoded value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Type formats a type expression.
func Type(t string) string { return StyleType.Render(t) }

// Mutability colors a state mutability: reads dim, payable yellow.
func Mutability(m string) string {
	switch m {
	case "view", "pure":
		return StyleMeta.Render(m)
	case "payable":
		return StyleWarning.Render(m)
	}
	return StyleValue.Render(m)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
