package models

import "time"

// Phase is the synchronization controller's position in its state machine.
type Phase int

const (
	// PhaseIdle means every local edit has been confirmed by the server.
	PhaseIdle Phase = iota
	// PhasePendingEdit means a local edit is waiting for the debounce timer
	// or a flush trigger.
	PhasePendingEdit
	// PhaseFlushing means a save request is in flight.
	PhaseFlushing
	// PhaseConflict means the last save was rejected with 412 and the
	// reload-and-retry-once resolution is running.
	PhaseConflict
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingEdit:
		return "pending"
	case PhaseFlushing:
		return "flushing"
	case PhaseConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// CacheEntry is the durable snapshot written to the local cache.
//
// An empty VersionToken means no server version has been observed yet.
// Dirty marks a snapshot whose Data holds a local edit the server has not
// confirmed; it lets a restarted client push that edit after reconciling.
type CacheEntry[T any] struct {
	Data         *T     `json:"data"`
	VersionToken string `json:"version_token,omitempty"`
	Dirty        bool   `json:"dirty,omitempty"`
}

// SyncState is the observable state of a synchronization controller.
type SyncState[T any] struct {
	// Data is the latest locally known document. Nil until the cache or the
	// server provided one.
	Data *T

	// VersionToken is the last token the server returned or confirmed.
	VersionToken string

	// Loading is true while the initial reconcile with the server runs.
	Loading bool

	// Error holds the last network or validation failure, empty when the
	// last operation succeeded.
	Error string

	// LastSyncAt is the time of the last server-confirmed save or load.
	LastSyncAt *time.Time

	// Phase is the controller's state machine position.
	Phase Phase
}

// LoadResult is the outcome of a conditional document read.
//
// Status is http.StatusNotModified when the caller's token is still
// current (Document is nil), or http.StatusOK with the current document
// and its fresh token.
type LoadResult[T any] struct {
	Status       int
	Document     *T
	VersionToken string
}

// SaveResult is the outcome of a conditional document write.
//
// Status is http.StatusOK with the server-assigned VersionToken, or
// http.StatusPreconditionFailed when the precondition token was stale.
type SaveResult struct {
	Status       int    `json:"-"`
	VersionToken string `json:"version_token"`
}
