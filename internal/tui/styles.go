package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorCritical  = lipgloss.Color("196")
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).MarginBottom(1)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Width(labelWidth)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)
)

const (
	labelWidth    = 10
	defaultWidth  = 80
	defaultHeight = 24
	// chromeLines is the height taken by the title, status line and help.
	chromeLines = 6
)
