package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
)

// Contest is one finished Codeforces contest shown in the table.
type Contest struct {
	ID   string
	Name string
}

// main TUI application model
type Model struct {
	client   *Client
	table    table.Model
	spinner  spinner.Model
	contests []Contest
	loaded   map[string]bool
	loading  map[string]bool
	failed   map[string]bool
	fetching bool
	width    int
	height   int
	err      error
}

// sent when the contest list and loaded IDs have been fetched
type contestListMsg struct {
	contests []Contest
	loaded   []string
	err      error
}

// sent when a contest load request finishes
type loadResultMsg struct {
	contestID string
	err       error
}
