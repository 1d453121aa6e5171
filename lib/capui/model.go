// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/capservice"
	"github.com/roster-works/roster/lib/capstore"
	"github.com/roster-works/roster/lib/tui"
)

// FocusRegion identifies which part of the UI receives key events.
type FocusRegion int

const (
	// FocusList: the capability list pane has focus.
	FocusList FocusRegion = iota
	// FocusDetail: the detail pane has focus (consultant selection).
	FocusDetail
	// FocusFilter: the filter input captures typed characters.
	FocusFilter
	// FocusForm: the registration form captures all input.
	FocusForm
)

// statusFadeDelay is how long a status bar message stays visible. Each
// new message restarts the clock; the fade only applies to the most
// recent one.
const statusFadeDelay = 5 * time.Second

// Status message kinds, matched by tui.Theme.MessageColor.
const (
	statusSuccess = "success"
	statusError   = "error"
	statusInfo    = "info"
)

// Mutation actions, named in result messages and log records.
const (
	actionRegister   = "register"
	actionUnregister = "unregister"
)

// listSplitRatio is the fraction of the terminal width given to the
// list pane; the detail pane takes the rest minus the divider column.
const listSplitRatio = 0.42

// registerFormWidth is the preferred width of the registration form
// overlay; it shrinks on narrow terminals.
const registerFormWidth = 52

// Store is the capability state the model renders and mutates.
// *capstore.Store satisfies it; tests substitute fakes.
type Store interface {
	Snapshot() capability.Snapshot
	LastUpdated() time.Time
	Subscribe() <-chan capstore.Event
	Refresh(ctx context.Context) (capability.Snapshot, error)
	Register(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) (string, error)
}

// storeEventMsg delivers one store event into the Update loop. The
// event itself is only the trigger: the handler re-reads the store's
// current snapshot, so a burst of events collapses into fresh renders.
type storeEventMsg struct {
	event capstore.Event
}

// fetchResultMsg reports a Refresh issued by this model (initial load
// or the manual refresh binding). Auto-refresh results arrive as store
// events instead.
type fetchResultMsg struct {
	initial bool
	err     error
}

// mutationResultMsg reports a register/unregister round trip.
type mutationResultMsg struct {
	action     string
	capability string
	email      string
	message    string // Server-supplied success text.
	err        error
}

// statusFadeMsg hides the status message it was armed for. generation
// pairs the timer with the message: stale timers from replaced
// messages are ignored.
type statusFadeMsg struct {
	generation int
}

// logRecordMsg carries one slog record from LogHandler into the
// status bar.
type logRecordMsg struct {
	summary string
	level   slog.Level
}

type statusMessage struct {
	text string
	kind string
}

// Config configures a Model.
type Config struct {
	// Store provides snapshots and mutations. Required.
	Store Store

	// Logger receives diagnostic records for failed mutations. Debug
	// level: user-visible feedback goes through the status bar, the
	// log keeps the full error chain. Defaults to slog.Default().
	Logger *slog.Logger

	// Theme overrides the color palette. Defaults to tui.DefaultTheme.
	Theme *tui.Theme
}

// Model is the bubbletea model for the roster viewer.
type Model struct {
	store  Store
	logger *slog.Logger
	theme  tui.Theme
	keys   KeyMap

	width  int
	height int
	ready  bool

	focus FocusRegion

	// Rendered state, rebuilt from the store on every event.
	// visibleNames is the filtered list in snapshot order;
	// matchPositions maps name to matched rune indices when a fuzzy
	// filter is active.
	snapshot       capability.Snapshot
	lastUpdated    time.Time
	visibleNames   []string
	matchPositions map[string][]int

	// List selection. selectedName tracks the selection by name so it
	// survives snapshot reordering and filter changes.
	cursor       int
	scrollOffset int
	selectedName string

	filter FilterState
	slab   *util.Slab

	detail DetailPane
	form   RegisterForm

	// Status bar message with its fade generation (statusFadeMsg).
	status           statusMessage
	statusGeneration int

	// fetchPending is true from start until the initial fetch
	// resolves; initialFetchFailed replaces the list pane with a
	// static error display until a later fetch succeeds.
	fetchPending       bool
	initialFetchFailed bool

	events <-chan capstore.Event
}

// NewModel creates a Model subscribed to the given store.
func NewModel(config Config) (Model, error) {
	if config.Store == nil {
		return Model{}, errors.New("capui: Config.Store is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}

	model := Model{
		store:        config.Store,
		logger:       logger,
		theme:        theme,
		keys:         DefaultKeyMap,
		detail:       NewDetailPane(theme),
		form:         NewRegisterForm(theme),
		slab:         tui.NewSlab(),
		events:       config.Store.Subscribe(),
		fetchPending: true,
	}
	model.rebuild()
	return model, nil
}

// Init implements tea.Model: fetch the initial snapshot and start
// listening for store events.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		model.fetchCmd(true),
		listenForStoreEvent(model.events),
	)
}

// listenForStoreEvent returns a tea.Cmd that blocks until a store
// event arrives, then delivers it as a storeEventMsg. The handler
// re-arms it after each delivery.
func listenForStoreEvent(events <-chan capstore.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{event: event}
	}
}

// --- Commands ---

func (model Model) fetchCmd(initial bool) tea.Cmd {
	store := model.store
	return func() tea.Msg {
		_, err := store.Refresh(context.Background())
		return fetchResultMsg{initial: initial, err: err}
	}
}

func (model Model) registerCmd(name, email string) tea.Cmd {
	store := model.store
	return func() tea.Msg {
		serverMessage, err := store.Register(context.Background(), name, email)
		return mutationResultMsg{
			action:     actionRegister,
			capability: name,
			email:      email,
			message:    serverMessage,
			err:        err,
		}
	}
}

func (model Model) unregisterCmd(name, email string) tea.Cmd {
	store := model.store
	return func() tea.Msg {
		serverMessage, err := store.Unregister(context.Background(), name, email)
		return mutationResultMsg{
			action:     actionUnregister,
			capability: name,
			email:      email,
			message:    serverMessage,
			err:        err,
		}
	}
}

// --- Update ---

// Update implements tea.Model. Routes keyboard events by focus region
// and folds asynchronous results back into view state.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		model.ensureCursorVisible()
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case storeEventMsg:
		model.rebuild()
		return model, listenForStoreEvent(model.events)

	case fetchResultMsg:
		return model.handleFetchResult(message)

	case mutationResultMsg:
		return model.handleMutationResult(message)

	case statusFadeMsg:
		if message.generation == model.statusGeneration {
			model.status = statusMessage{}
		}
		return model, nil

	case logRecordMsg:
		kind := statusInfo
		if message.level >= slog.LevelWarn {
			kind = statusError
		}
		return model, model.showMessage(message.summary, kind)
	}

	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.focus == FocusForm {
		return model.handleFormKey(message)
	}
	if model.focus == FocusFilter {
		return model.handleFilterKey(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle):
		if model.focus == FocusList {
			model.focus = FocusDetail
		} else {
			model.focus = FocusList
		}

	case key.Matches(message, model.keys.FilterActivate):
		model.focus = FocusFilter
		model.filter.Active = true

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.applyFilter()
			model.restoreSelection()
			model.syncDetail()
		}

	case key.Matches(message, model.keys.Register):
		model.form.Open(selectorOptions(model.snapshot), model.selectedName)
		model.focus = FocusForm

	case key.Matches(message, model.keys.Unregister):
		if model.focus == FocusDetail {
			return model.unregisterSelected()
		}

	case key.Matches(message, model.keys.Refresh):
		return model, model.fetchCmd(false)

	case key.Matches(message, model.keys.Up):
		if model.focus == FocusList {
			model.moveCursor(-1)
		} else {
			model.detail.MoveUp()
		}

	case key.Matches(message, model.keys.Down):
		if model.focus == FocusList {
			model.moveCursor(1)
		} else {
			model.detail.MoveDown()
		}

	case key.Matches(message, model.keys.PageUp):
		if model.focus == FocusList {
			model.moveCursor(-model.visibleRows())
		} else {
			model.detail.HalfPageUp()
		}

	case key.Matches(message, model.keys.PageDown):
		if model.focus == FocusList {
			model.moveCursor(model.visibleRows())
		} else {
			model.detail.HalfPageDown()
		}

	case key.Matches(message, model.keys.Home):
		if model.focus == FocusList {
			model.moveCursorTo(0)
		} else {
			model.detail.GotoTop()
		}

	case key.Matches(message, model.keys.End):
		if model.focus == FocusList {
			model.moveCursorTo(len(model.visibleNames) - 1)
		} else {
			model.detail.GotoBottom()
		}
	}

	return model, nil
}

func (model Model) handleFilterKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEsc:
		model.filter.Clear()
		model.applyFilter()
		model.restoreSelection()
		model.syncDetail()
		model.focus = FocusList

	case tea.KeyEnter:
		// Confirm: keep the query narrowing the list, return focus.
		model.filter.Active = false
		model.focus = FocusList

	case tea.KeyUp:
		model.moveCursor(-1)

	case tea.KeyDown:
		model.moveCursor(1)

	case tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.refilter()
		}

	case tea.KeyRunes:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.refilter()
	}
	return model, nil
}

func (model Model) handleFormKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	switch model.form.HandleKey(message) {
	case FormCancelled:
		model.focus = FocusList

	case FormSubmitted:
		name := model.form.Capability()
		email := model.form.Email()
		if name == "" || email == "" {
			return model, model.showMessage("Select a capability and enter an email address", statusError)
		}
		model.focus = FocusList
		return model, model.registerCmd(name, email)
	}
	return model, nil
}

func (model Model) unregisterSelected() (tea.Model, tea.Cmd) {
	email, ok := model.detail.SelectedConsultant()
	if !ok {
		return model, nil
	}
	return model, model.unregisterCmd(model.detail.Name(), email)
}

func (model Model) handleFetchResult(message fetchResultMsg) (tea.Model, tea.Cmd) {
	model.fetchPending = false
	if message.err != nil {
		if message.initial {
			model.initialFetchFailed = true
			return model, nil
		}
		return model, model.showMessage(messageForError("", message.err), statusError)
	}

	model.initialFetchFailed = false
	model.rebuild()
	if !message.initial {
		return model, model.showMessage("Capabilities refreshed", statusSuccess)
	}
	return model, nil
}

func (model Model) handleMutationResult(message mutationResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Debug("mutation failed",
			"action", message.action,
			"capability", message.capability,
			"email", message.email,
			"error", message.err)
		return model, model.showMessage(messageForError(message.action, message.err), statusError)
	}

	model.rebuild()
	text := message.message
	if text == "" {
		switch message.action {
		case actionRegister:
			text = fmt.Sprintf("Registered %s for %s", message.email, message.capability)
		default:
			text = fmt.Sprintf("Removed %s from %s", message.email, message.capability)
		}
	}
	return model, model.showMessage(text, statusSuccess)
}

// messageForError converts a store error into status bar text: the
// server's detail verbatim when it sent one, otherwise generic text
// for the attempted action (network and decode failures share it).
func messageForError(action string, err error) string {
	if serviceErr, ok := capservice.IsServiceError(err); ok && serviceErr.Detail != "" {
		return serviceErr.Detail
	}
	switch action {
	case actionRegister:
		return "Failed to register consultant"
	case actionUnregister:
		return "Failed to unregister consultant"
	default:
		return "Failed to refresh capabilities"
	}
}

// showMessage replaces the status bar message and arms its fade timer.
// The bumped generation invalidates timers armed for earlier messages,
// so the newest message always gets its full five seconds.
func (model *Model) showMessage(text, kind string) tea.Cmd {
	model.status = statusMessage{text: text, kind: kind}
	model.statusGeneration++
	generation := model.statusGeneration
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{generation: generation}
	})
}

// --- View state maintenance ---

// rebuild re-reads the store and recomputes everything derived from
// the snapshot: the filtered name list, the selection, the detail
// pane, and (while the form is open) the selector options.
func (model *Model) rebuild() {
	model.snapshot = model.store.Snapshot()
	model.lastUpdated = model.store.LastUpdated()
	model.applyFilter()
	model.restoreSelection()
	model.syncDetail()
	if model.focus == FocusForm {
		model.form.SetOptions(selectorOptions(model.snapshot))
	}
}

// applyFilter recomputes visibleNames from the snapshot and the filter
// query. Matching is fuzzy per name; the result preserves snapshot
// order (the filter narrows, never reorders).
func (model *Model) applyFilter() {
	names := model.snapshot.Names()
	if model.filter.Input == "" {
		model.visibleNames = names
		model.matchPositions = nil
		return
	}

	pattern := []rune(model.filter.Input)
	visible := make([]string, 0, len(names))
	positions := make(map[string][]int, len(names))
	for _, name := range names {
		result := tui.FuzzyMatch(name, pattern, model.slab)
		if result.Score > 0 {
			visible = append(visible, name)
			positions[name] = result.Positions
		}
	}
	model.visibleNames = visible
	model.matchPositions = positions
}

// refilter reapplies the filter after a query edit and re-anchors the
// selection: the previously selected capability stays selected if it
// still matches, otherwise selection falls to the first match.
func (model *Model) refilter() {
	model.applyFilter()
	model.restoreSelection()
	model.syncDetail()
}

// restoreSelection re-locates selectedName in the rebuilt visible
// list, clamping the cursor when it vanished.
func (model *Model) restoreSelection() {
	if model.selectedName != "" {
		for index, name := range model.visibleNames {
			if name == model.selectedName {
				model.cursor = index
				model.ensureCursorVisible()
				return
			}
		}
	}
	if model.cursor >= len(model.visibleNames) {
		model.cursor = len(model.visibleNames) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.updateSelectedName()
	model.ensureCursorVisible()
}

func (model *Model) updateSelectedName() {
	if model.cursor >= 0 && model.cursor < len(model.visibleNames) {
		model.selectedName = model.visibleNames[model.cursor]
	} else {
		model.selectedName = ""
	}
}

func (model *Model) moveCursor(delta int) {
	model.moveCursorTo(model.cursor + delta)
}

func (model *Model) moveCursorTo(index int) {
	if len(model.visibleNames) == 0 {
		return
	}
	model.cursor = index
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.visibleNames) {
		model.cursor = len(model.visibleNames) - 1
	}
	model.updateSelectedName()
	model.ensureCursorVisible()
	model.syncDetail()
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on
// screen, clamping the offset when the list shrank.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleRows()
	maxOffset := len(model.visibleNames) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// syncDetail points the detail pane at the selected capability.
func (model *Model) syncDetail() {
	if model.selectedName == "" {
		model.detail.Clear()
		return
	}
	entry, ok := model.snapshot.Get(model.selectedName)
	if !ok {
		model.detail.Clear()
		return
	}
	model.detail.SetCapability(model.selectedName, entry)
}

// --- Layout ---

// contentStartY is the first content row (row 0 is the header).
// bottomRows is the separator plus the status/help line.
const (
	contentStartY = 1
	bottomRows    = 2
)

func (model Model) contentHeight() int {
	height := model.height - contentStartY - bottomRows
	if height < 1 {
		height = 1
	}
	return height
}

func (model Model) listWidth() int {
	width := int(float64(model.width) * listSplitRatio)
	if width < 24 {
		width = 24
	}
	if width > model.width-20 && model.width > 44 {
		width = model.width - 20
	}
	return width
}

// visibleRows returns how many list rows fit, accounting for the
// filter bar when it is showing.
func (model Model) visibleRows() int {
	rows := model.contentHeight()
	if model.filter.Visible() {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (model *Model) updatePaneSizes() {
	detailWidth := model.width - model.listWidth() - 1
	if detailWidth < 10 {
		detailWidth = 10
	}
	model.detail.SetSize(detailWidth, model.contentHeight())
}

// --- View ---

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	sections := []string{
		model.renderHeader(),
		model.renderContent(),
		model.renderSeparator(),
		model.renderBottomBar(),
	}
	view := strings.Join(sections, "\n")

	// Overlays are spliced last so they sit above everything else.
	if model.focus == FocusForm {
		formWidth := registerFormWidth
		if formWidth > model.width-4 {
			formWidth = model.width - 4
		}
		formX := (model.width - formWidth) / 2
		if formX < 0 {
			formX = 0
		}
		formY := model.contentHeight() / 3
		if formY < 1 {
			formY = 1
		}

		view = tui.SpliceOverlay(view, model.form.View(formWidth), formX, formY)

		if model.form.DropdownOpen() {
			dropdown := model.form.Dropdown()
			dropdown.AnchorX, dropdown.AnchorY = model.form.DropdownAnchor(formX, formY)
			view = tui.SpliceOverlay(view, dropdown.Render(model.theme), dropdown.AnchorX, dropdown.AnchorY)
		}
	}

	return view
}

// renderHeader renders the top line: the application title, a rule
// filling the middle, and snapshot stats on the right.
func (model Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	ruleStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)

	title := " Roster "
	stats := fmt.Sprintf("%d capabilities", model.snapshot.Len())
	if !model.lastUpdated.IsZero() {
		stats += " · updated " + model.lastUpdated.Format("15:04:05")
	}
	stats += " "

	fill := model.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if fill < 0 {
		fill = 0
	}
	return titleStyle.Render(title) +
		ruleStyle.Render(strings.Repeat("─", fill)) +
		statsStyle.Render(stats)
}

func (model Model) renderContent() string {
	list := model.renderListPane()
	divider := model.renderDivider()
	detail := model.detail.View(model.focus == FocusDetail)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, divider, detail)
}

// renderListPane renders the left column: the filter bar when active,
// capability rows (or a placeholder message), and the scrollbar.
func (model Model) renderListPane() string {
	rowWidth := model.listWidth() - 1
	height := model.contentHeight()
	focused := model.focus == FocusList || model.focus == FocusFilter

	var rows []string
	if model.filter.Visible() {
		rows = append(rows, model.filter.View(model.theme, rowWidth))
	}

	if message, style, ok := model.listPlaceholder(); ok {
		rows = append(rows, lipgloss.Place(
			rowWidth, model.visibleRows(),
			lipgloss.Center, lipgloss.Center,
			style.Width(rowWidth-4).Align(lipgloss.Center).Render(message),
		))
	} else {
		renderer := NewListRenderer(model.theme, rowWidth)
		limit := model.scrollOffset + model.visibleRows()
		for index := model.scrollOffset; index < limit && index < len(model.visibleNames); index++ {
			name := model.visibleNames[index]
			entry, _ := model.snapshot.Get(name)
			rows = append(rows, renderer.RenderRow(name, entry, index == model.cursor, model.matchPositions[name]))
		}
		emptyRow := lipgloss.NewStyle().Width(rowWidth).Render("")
		for len(rows) < height {
			rows = append(rows, emptyRow)
		}
	}

	column := strings.Join(rows, "\n")
	scrollbar := tui.RenderScrollbar(
		model.theme, height,
		len(model.visibleNames), model.visibleRows(), model.scrollOffset,
		focused,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, column, scrollbar)
}

// listPlaceholder returns the message shown instead of list rows, if
// any: the static error display after a failed initial fetch, a
// loading notice, or empty-state text.
func (model Model) listPlaceholder() (string, lipgloss.Style, bool) {
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorText)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	switch {
	case model.initialFetchFailed:
		return "Failed to load capabilities. Please try again later.", errorStyle, true
	case model.fetchPending && model.snapshot.Len() == 0:
		return "Loading capabilities…", faintStyle, true
	case model.snapshot.Len() == 0:
		return "No capabilities available", faintStyle, true
	case len(model.visibleNames) == 0:
		return fmt.Sprintf("No capabilities match %q", model.filter.Input), faintStyle, true
	}
	return "", lipgloss.Style{}, false
}

func (model Model) renderDivider() string {
	divider := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render("│")
	lines := make([]string, model.contentHeight())
	for index := range lines {
		lines[index] = divider
	}
	return strings.Join(lines, "\n")
}

func (model Model) renderSeparator() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
}

// renderBottomBar renders the last line: the transient status message
// when one is visible, the key binding help otherwise.
func (model Model) renderBottomBar() string {
	if model.status.text != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.MessageColor(model.status.kind)).
			Width(model.width).
			MaxWidth(model.width).
			Render(" " + model.status.text)
	}
	return model.renderHelp()
}

func (model Model) renderHelp() string {
	var focusLabel, hints string
	switch model.focus {
	case FocusList:
		focusLabel = "LIST"
		hints = "j/k move · Tab roster · / filter · r register · R refresh · q quit"
	case FocusDetail:
		focusLabel = "ROSTER"
		hints = "j/k select · x remove · r register · Tab list · q quit"
	case FocusFilter:
		focusLabel = "FILTER"
		hints = "type to match · Enter apply · Esc clear"
	case FocusForm:
		focusLabel = "REGISTER"
		hints = "Enter submit · Tab switch field · Esc cancel"
	}

	left := fmt.Sprintf(" [%s] %s", focusLabel, hints)
	right := ""
	if model.focus == FocusList && len(model.visibleNames) > 0 {
		right = fmt.Sprintf("%d/%d ", model.cursor+1, len(model.visibleNames))
	}

	fill := model.width - lipgloss.Width(left) - lipgloss.Width(right)
	if fill < 0 {
		fill = 0
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		MaxWidth(model.width).
		Render(left + strings.Repeat(" ", fill) + right)
}
