package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorGreen     = lipgloss.Color("#00FF00")
	colorYellow    = lipgloss.Color("#FFFF00")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1).
			PaddingLeft(2)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorGray).
				MarginLeft(2)

	loadedGlyph  = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	loadingGlyph = lipgloss.NewStyle().Foreground(colorYellow).Render("⟳")
	failedGlyph  = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
)
