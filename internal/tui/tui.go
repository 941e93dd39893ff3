// Package tui is the terminal quote editor. It renders the sync
// controller's state, turns keystrokes into edits and maps terminal focus
// changes onto the hidden and visible lifecycle triggers.
package tui

import (
	"context"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// QuoteEditor is the part of the sync controller the editor drives.
type QuoteEditor interface {
	State() models.SyncState[models.Quote]
	Changes() <-chan struct{}
	SetData(update func(prev *models.Quote) models.Quote)
	Sync(ctx context.Context)
}

// Lifecycle receives terminal focus changes.
type Lifecycle interface {
	Hidden()
	Visible()
}

type TUI struct {
	editor        QuoteEditor
	lifecycle     Lifecycle
	notifications <-chan models.Notification
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

func New(editor QuoteEditor, lifecycle Lifecycle, notifications <-chan models.Notification, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		editor:        editor,
		lifecycle:     lifecycle,
		notifications: notifications,
		buildInfo:     buildInfo,
		logger:        logger,
	}
}

// Run shows the editor and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newQuoteModel(ctx, t.editor, t.lifecycle, t.notifications, t.buildInfo)

	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program stopped")
	}
	return err
}
