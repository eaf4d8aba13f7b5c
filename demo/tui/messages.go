package tui

import "novai/types"

// Messages for the tea program

// FeedLoadedMsg is sent when a feed page arrives from the server
type FeedLoadedMsg struct {
	Feed Feed
	Page *types.FeedPage
	Err  error
}

// RefreshStartedMsg is sent after triggering a background refresh
type RefreshStartedMsg struct {
	Err error
}
