package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/quote-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 4 * time.Second

// Fixed rows above the item list.
const (
	rowCustomer = iota
	rowEmail
	rowCurrency
	rowNotes
	fixedRows
)

var fieldLabels = [fixedRows]string{"Customer", "Email", "Currency", "Notes"}

// newItemRow marks the item form as adding rather than editing.
const newItemRow = -1

type editMode int

const (
	editNone editMode = iota
	editField
	editItem
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type quoteModel struct {
	ctx           context.Context
	editor        QuoteEditor
	lifecycle     Lifecycle
	notifications <-chan models.Notification
	buildInfo     models.AppBuildInfo

	state  models.SyncState[models.Quote]
	cursor int

	mode    editMode
	editRow int
	inputs  []textinput.Model
	focus   int

	status        string
	formErr       string
	toast         *toastModel
	toastSeq      int
	showBuildInfo bool
}

func newQuoteModel(ctx context.Context, editor QuoteEditor, lifecycle Lifecycle, notifications <-chan models.Notification, buildInfo models.AppBuildInfo) quoteModel {
	return quoteModel{
		ctx:           ctx,
		editor:        editor,
		lifecycle:     lifecycle,
		notifications: notifications,
		buildInfo:     buildInfo,
		state:         editor.State(),
	}
}

func (m quoteModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.editor.Changes()), waitForNotification(m.notifications))
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func waitForNotification(notifications <-chan models.Notification) tea.Cmd {
	if notifications == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-notifications
		if !ok {
			return nil
		}
		return notificationMsg{notification: n}
	}
}

func (m quoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = m.editor.State()
		m.clampCursor()
		return m, waitForChange(m.editor.Changes())
	case notificationMsg:
		m.toastSeq++
		seq := m.toastSeq
		m.toast = &toastModel{notification: msg.notification}
		return m, tea.Batch(
			waitForNotification(m.notifications),
			tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} }),
		)
	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = "Summary copied"
		}
		return m, nil
	case tea.BlurMsg:
		if m.lifecycle != nil {
			m.lifecycle.Hidden()
		}
		return m, nil
	case tea.FocusMsg:
		if m.lifecycle != nil {
			m.lifecycle.Visible()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode != editNone {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode != editNone {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m quoteModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		m.startEdit(m.cursor)
	case key.Matches(msg, keys.addItem):
		m.startItemForm(newItemRow, models.QuoteItem{Quantity: 1})
	case key.Matches(msg, keys.delete):
		if idx := m.cursor - fixedRows; idx >= 0 {
			m.editor.SetData(removeItem(idx))
			m.status = "Item removed"
		}
	case key.Matches(msg, keys.sync):
		m.status = "Syncing..."
		ctx, editor := m.ctx, m.editor
		return m, func() tea.Msg {
			editor.Sync(ctx)
			return nil
		}
	case key.Matches(msg, keys.copy):
		summary := quoteSummary(m.quote())
		return m, func() tea.Msg {
			return copiedMsg{err: writeClipboard(summary)}
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m quoteModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopEdit()
		return m, nil
	case msg.String() == "enter":
		return m.submitForm()
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m quoteModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *quoteModel) moveFocus(delta int) {
	if len(m.inputs) < 2 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *quoteModel) startEdit(row int) {
	q := m.quote()
	if row >= fixedRows {
		idx := row - fixedRows
		if idx < len(q.Items) {
			m.startItemForm(idx, q.Items[idx])
		}
		return
	}

	values := [fixedRows]string{q.Customer.Name, q.Customer.Email, q.Currency, q.Notes}
	m.mode = editField
	m.editRow = row
	m.inputs = []textinput.Model{newInput(fieldLabels[row], values[row])}
	m.focus = 0
	m.inputs[0].Focus()
	m.formErr = ""
}

func (m *quoteModel) startItemForm(idx int, item models.QuoteItem) {
	price := ""
	if item.UnitPrice > 0 {
		price = formatMoney(item.UnitPrice)
	}

	m.mode = editItem
	m.editRow = idx
	m.inputs = []textinput.Model{
		newInput("Name", item.Name),
		newInput("SKU", item.SKU),
		newInput("Quantity", strconv.FormatInt(item.Quantity, 10)),
		newInput("Unit price", price),
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.formErr = ""
}

func (m *quoteModel) stopEdit() {
	m.mode = editNone
	m.inputs = nil
	m.focus = 0
	m.formErr = ""
}

func (m quoteModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case editField:
		m.editor.SetData(setField(m.editRow, m.inputs[0].Value()))
	case editItem:
		qty, err := parseQuantity(m.inputs[2].Value())
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		price, err := parseMoney(m.inputs[3].Value())
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		item := models.QuoteItem{
			Name:      m.inputs[0].Value(),
			SKU:       m.inputs[1].Value(),
			Quantity:  qty,
			UnitPrice: price,
		}
		m.editor.SetData(putItem(m.editRow, item))
		if m.editRow == newItemRow {
			m.cursor = fixedRows + len(m.quote().Items)
		}
	}

	m.stopEdit()
	m.status = ""
	return m, nil
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 200
	in.SetValue(value)
	in.CursorEnd()
	return in
}

func (m quoteModel) quote() models.Quote {
	if m.state.Data == nil {
		return models.Quote{}
	}
	return *m.state.Data
}

func (m quoteModel) rowCount() int {
	return fixedRows + len(m.quote().Items)
}

func (m *quoteModel) clampCursor() {
	if m.cursor >= m.rowCount() {
		m.cursor = m.rowCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ── Updates handed to the controller ─────────────────────────

func base(prev *models.Quote) models.Quote {
	if prev == nil {
		return models.Quote{}
	}
	return prev.Clone()
}

func setField(row int, value string) func(*models.Quote) models.Quote {
	return func(prev *models.Quote) models.Quote {
		q := base(prev)
		switch row {
		case rowCustomer:
			q.Customer.Name = value
		case rowEmail:
			q.Customer.Email = value
		case rowCurrency:
			q.Currency = value
		case rowNotes:
			q.Notes = value
		}
		return q
	}
}

// putItem replaces the item at idx, or appends when idx is newItemRow or
// no longer exists.
func putItem(idx int, item models.QuoteItem) func(*models.Quote) models.Quote {
	return func(prev *models.Quote) models.Quote {
		q := base(prev)
		if idx >= 0 && idx < len(q.Items) {
			q.Items[idx] = item
		} else {
			q.Items = append(q.Items, item)
		}
		return q
	}
}

func removeItem(idx int) func(*models.Quote) models.Quote {
	return func(prev *models.Quote) models.Quote {
		q := base(prev)
		if idx >= 0 && idx < len(q.Items) {
			q.Items = append(q.Items[:idx], q.Items[idx+1:]...)
		}
		return q
	}
}

// ── View ─────────────────────────────────────────────────────

func (m quoteModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	title := titleStyle.Render("QUOTE") + "  " + m.syncStatus()

	var body string
	var hotKeys string
	switch m.mode {
	case editField:
		body = m.viewQuote() + "\n\n" + fieldLabels[m.editRow] + ": " + m.inputs[0].View()
		hotKeys = "enter: save · esc: cancel"
	case editItem:
		body = m.viewQuote() + "\n\n" + m.viewItemForm()
		hotKeys = "tab: next field · enter: save · esc: cancel"
	default:
		body = m.viewQuote()
		hotKeys = "↑/↓: move · enter: edit · a: add item · d: delete item · s: sync · c: copy · v: about · q: quit"
	}

	if m.formErr != "" {
		body += "\n" + errorStyle.Render(m.formErr)
	}
	if m.status != "" {
		body += "\n" + helpStyle.Render(m.status)
	}

	out := renderPage(title, body, hotKeys)
	if m.toast != nil {
		out += "\n\n" + m.toast.View()
	}
	return appStyle.Render(out)
}

func (m quoteModel) syncStatus() string {
	if m.state.Error != "" {
		return errorStyle.Render(humanizeSyncError(m.state.Error))
	}
	if m.state.Loading {
		return pendingStyle.Render("Loading...")
	}

	switch m.state.Phase {
	case models.PhasePendingEdit:
		return pendingStyle.Render("Unsaved changes")
	case models.PhaseFlushing:
		return pendingStyle.Render("Saving...")
	case models.PhaseConflict:
		return pendingStyle.Render("Resolving conflict...")
	}

	if m.state.LastSyncAt != nil {
		return okStyle.Render("Saved " + m.state.LastSyncAt.Local().Format("15:04:05"))
	}
	return helpStyle.Render("Not synced yet")
}

func (m quoteModel) viewQuote() string {
	q := m.quote()
	values := [fixedRows]string{q.Customer.Name, q.Customer.Email, q.Currency, q.Notes}

	var b strings.Builder
	for row := range fixedRows {
		line := labelStyle.Render(fieldLabels[row]) + " " + fitText(valueOrDash(values[row]), 48)
		b.WriteString(m.renderRow(row, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Items"))
	b.WriteString("\n")
	if len(q.Items) == 0 {
		b.WriteString(helpStyle.Render("  no items, press a to add one"))
		b.WriteString("\n")
	}
	for i, item := range q.Items {
		line := fmt.Sprintf("%2d. %-24s %4d x %10s = %10s",
			i+1, fitText(itemLabel(item), 24), item.Quantity, formatMoney(item.UnitPrice), formatMoney(item.Subtotal()))
		b.WriteString(m.renderRow(fixedRows+i, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Total %s %s", formatMoney(q.Total()), q.Currency)))
	return b.String()
}

func (m quoteModel) renderRow(row int, line string) string {
	if m.mode == editNone && row == m.cursor {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func (m quoteModel) viewItemForm() string {
	labels := []string{"Name", "SKU", "Quantity", "Unit price"}

	var b strings.Builder
	if m.editRow == newItemRow {
		b.WriteString(titleStyle.Render("New item"))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Item %d", m.editRow+1)))
	}
	for i, in := range m.inputs {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
	}
	return b.String()
}
