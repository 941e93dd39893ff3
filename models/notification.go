package models

// Notification classes emitted by the synchronization engine.
const (
	// NotificationSyncResolved is shown after a conflict was resolved by the
	// automatic reload-and-retry.
	NotificationSyncResolved = "sync-resolved"

	// NotificationSyncConflict is shown when automatic resolution gave up.
	NotificationSyncConflict = "sync-conflict"
)

// Notification is a user-facing message handed to a notification sink.
// Class groups notifications for throttling purposes.
type Notification struct {
	Class       string `json:"class"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
