package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss styles for the wall display
var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	sauceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true)
	teamStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	timerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	urgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	questionBox  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)
