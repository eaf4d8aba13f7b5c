package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"novai/types"
)

// State represents the browser state machine
type State string

const (
	StateLoading    State = "loading"
	StateBrowsing   State = "browsing"
	StateRefreshing State = "refreshing"
	StateError      State = "error"
)

// Feed identifies which feed endpoint is being browsed
type Feed string

const (
	FeedTopStories Feed = "top-stories"
	FeedLive       Feed = "live"
	FeedHacker     Feed = "hacker"
	FeedWarRoom    Feed = "war-room"
)

// Model represents the TUI client state (thin client over the feed API)
type Model struct {
	// Feed API client
	Client *FeedClient

	// Which feed and page we are looking at
	Feed Feed
	Page int

	// Last page received from the server
	Result *types.FeedPage

	// Cursor into Result.Articles
	Selected int

	// Local UI state
	State State
	Err   error
	Logs  []string
}

// NewModel creates a new TUI model
func NewModel(baseURL string) Model {
	return Model{
		Client: NewFeedClient(baseURL),
		Feed:   FeedTopStories,
		Page:   1,
		State:  StateLoading,
		Logs:   make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadFeed(m.Client, m.Feed, m.Page)
}

// AddLog appends a log message, keeping the last 5
func (m Model) AddLog(msg string) Model {
	m.Logs = append(m.Logs, msg)
	if len(m.Logs) > 5 {
		m.Logs = m.Logs[len(m.Logs)-5:]
	}
	return m
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateLoading:
		return StatusStyle.Render(fmt.Sprintf("⏳ Loading %s feed...", m.Feed))
	case StateRefreshing:
		return StatusStyle.Render("🔄 Refresh triggered, reloading...")
	case StateBrowsing:
		if m.Result == nil || len(m.Result.Articles) == 0 {
			return InfoStyle.Render("No articles on this page")
		}
		return StatusStyle.Render(fmt.Sprintf("📰 %s · page %d/%d · %d articles total",
			m.Feed, m.Result.Page, m.Result.TotalPages, m.Result.Total))
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}
