package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

func fetchContests(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		contests, err := client.FetchContests(ctx)
		if err != nil {
			return contestListMsg{err: err}
		}

		// a missing RAG service should not hide the contest list
		loaded, err := client.FetchLoaded(ctx)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch loaded contests")
			loaded = nil
		}

		return contestListMsg{contests: contests, loaded: loaded}
	}
}

func loadContest(client *Client, contestID string) tea.Cmd {
	return func() tea.Msg {
		err := client.LoadContest(context.Background(), contestID)
		return loadResultMsg{contestID: contestID, err: err}
	}
}
