package ui

import "vincode/internal/workspace"

// Bubble Tea messages

// storeEventMsg carries a committed workspace change.
type storeEventMsg workspace.Event

// storeClosedMsg is sent when the subscription channel closes.
type storeClosedMsg struct{}

// generic notifications
type noticeMsg string

// exportDoneMsg reports the archive written by /export.
type exportDoneMsg struct {
	path string
	err  error
}
