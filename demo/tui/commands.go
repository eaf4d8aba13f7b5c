package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadFeed creates a command to fetch one page of a feed
func loadFeed(client *FeedClient, feed Feed, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := client.GetFeed(feed, page)
		return FeedLoadedMsg{
			Feed: feed,
			Page: result,
			Err:  err,
		}
	}
}

// triggerRefresh creates a command to kick off a server-side refresh
func triggerRefresh(client *FeedClient) tea.Cmd {
	return func() tea.Msg {
		err := client.Refresh()
		return RefreshStartedMsg{Err: err}
	}
}
