package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	positionStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	categoryTagStyle = lipgloss.NewStyle().
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1)

	questionStyle = lipgloss.NewStyle().
			Bold(true)

	translationStyle = lipgloss.NewStyle().
				Italic(true).
				Faint(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	emptyDeckStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(2, 4)

	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)
)
