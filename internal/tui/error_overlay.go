package tui

import "github.com/MKhiriev/quote-sync/models"

// toastModel renders a notification from the sync engine.
type toastModel struct {
	notification models.Notification
}

func (m toastModel) View() string {
	content := titleStyle.Render(m.notification.Title)
	if m.notification.Description != "" {
		content += "\n" + m.notification.Description
	}
	if m.notification.Class == models.NotificationSyncConflict {
		return overlayBoxStyle.BorderForeground(errorStyle.GetForeground()).Render(content)
	}
	return overlayBoxStyle.Render(content)
}
