package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("30")
	ColorBorder    = lipgloss.Color("240")
	ColorSpinner   = lipgloss.Color("205")
	ColorFocus     = lipgloss.Color("214")
)

// Text styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Table styles.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorHighlight)
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Footer control styles.
var (
	ControlStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("250"))
	ControlCurrentStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(ColorHighlight)
	ControlDisabledStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(ColorMuted)
	ControlFocusStyle = lipgloss.NewStyle().
				Underline(true).
				Foreground(ColorFocus)
	EllipsisStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted)
)
