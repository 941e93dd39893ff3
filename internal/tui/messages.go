package tui

import "github.com/MKhiriev/quote-sync/models"

// stateChangedMsg is delivered whenever the sync controller reports a new
// state.
type stateChangedMsg struct{}

type notificationMsg struct {
	notification models.Notification
}

type copiedMsg struct {
	err error
}

// clearToastMsg hides the toast with the given sequence number, unless a
// newer toast replaced it.
type clearToastMsg struct {
	seq int
}
