package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case FeedLoadedMsg:
		return m.handleFeedLoaded(msg)
	case RefreshStartedMsg:
		return m.handleRefreshStarted(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Result != nil && m.Selected < len(m.Result.Articles)-1 {
			m.Selected++
		}
		return m, nil
	case "right", "n":
		if m.Result != nil && m.Page < m.Result.TotalPages {
			return m.switchTo(m.Feed, m.Page+1)
		}
		return m, nil
	case "left", "p":
		if m.Page > 1 {
			return m.switchTo(m.Feed, m.Page-1)
		}
		return m, nil
	case "t":
		return m.switchTo(FeedTopStories, 1)
	case "l":
		return m.switchTo(FeedLive, 1)
	case "h":
		return m.switchTo(FeedHacker, 1)
	case "w":
		return m.switchTo(FeedWarRoom, 1)
	case "r":
		if m.State == StateBrowsing {
			m.State = StateRefreshing
			m = m.AddLog("Triggering background refresh...")
			return m, triggerRefresh(m.Client)
		}
		return m, nil
	}
	return m, nil
}

// switchTo moves to another feed or page and reloads
func (m Model) switchTo(feed Feed, page int) (tea.Model, tea.Cmd) {
	m.Feed = feed
	m.Page = page
	m.Selected = 0
	m.State = StateLoading
	return m, loadFeed(m.Client, feed, page)
}

// handleFeedLoaded processes a feed page arriving from the server
func (m Model) handleFeedLoaded(msg FeedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Feed != m.Feed {
		// Stale response from before a feed switch
		return m, nil
	}
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Page
	m.State = StateBrowsing
	if m.Selected >= len(msg.Page.Articles) {
		m.Selected = 0
	}
	m = m.AddLog(fmt.Sprintf("Loaded %d articles from %s", len(msg.Page.Articles), msg.Feed))
	for _, e := range msg.Page.Errors {
		m = m.AddLog("Source error: " + e)
	}
	return m, nil
}

// handleRefreshStarted processes the refresh acknowledgement
func (m Model) handleRefreshStarted(msg RefreshStartedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m = m.AddLog("Refresh started on server")
	return m.switchTo(m.Feed, m.Page)
}
