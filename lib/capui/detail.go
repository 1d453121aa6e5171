// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/tui"
)

// detailHeaderLines is the fixed height of the detail pane header:
// name, practice area, capacity + consultant count, verticals, and a
// separator line. Always rendered; the body scrolls beneath it.
const detailHeaderLines = 5

// emptyRosterPlaceholder is shown in place of the consultant roster
// when no one is registered for the displayed capability.
const emptyRosterPlaceholder = "No consultants registered yet"

// DetailPane renders the right side of the viewer: a fixed header for
// the selected capability and a scrollable body with the markdown
// description and the consultant roster. Each roster row is a removal
// target: the pane tracks a consultant cursor and the model unregisters
// the selected email on demand.
type DetailPane struct {
	viewport viewport.Model
	theme    tui.Theme
	width    int
	height   int

	// Retained for re-rendering on resize. name and entry are set by
	// SetCapability and cleared by Clear.
	hasCapability bool
	name          string
	entry         capability.Capability

	// Pre-rendered header string, set by rerender.
	header string

	// cursor is the selected index into entry.Consultants, or -1 when
	// the roster is empty. rosterStart is the body line number of the
	// first roster row, used to keep the selected row visible while
	// scrolling.
	cursor      int
	rosterStart int
}

// NewDetailPane creates an empty detail pane.
func NewDetailPane(theme tui.Theme) DetailPane {
	return DetailPane{theme: theme, cursor: -1}
}

// bodyHeight returns the number of lines available for the scrollable
// viewport body (total height minus the fixed header).
func (pane DetailPane) bodyHeight() int {
	result := pane.height - detailHeaderLines
	if result < 1 {
		result = 1
	}
	return result
}

// contentWidth returns the usable width for text content (total width
// minus the left padding column and right scrollbar column).
func (pane DetailPane) contentWidth() int {
	result := pane.width - 2
	if result < 10 {
		result = 10
	}
	return result
}

// SetSize updates the pane dimensions. If the width changed and a
// capability is displayed, the content is re-rendered at the new width
// so markdown wrapping stays correct.
func (pane *DetailPane) SetSize(width, height int) {
	previousWidth := pane.width
	pane.width = width
	pane.height = height
	pane.viewport.Width = pane.contentWidth()
	pane.viewport.Height = pane.bodyHeight()

	if pane.hasCapability && width != previousWidth {
		pane.rerender()
	}
}

// SetCapability updates the pane with the named capability. When the
// displayed capability changes, the consultant cursor and scroll
// position reset; when the same capability is re-set (roster mutated),
// the cursor is clamped so the selection survives removals.
func (pane *DetailPane) SetCapability(name string, entry capability.Capability) {
	changed := name != pane.name || !pane.hasCapability

	pane.hasCapability = true
	pane.name = name
	pane.entry = entry

	if changed {
		pane.cursor = 0
		pane.viewport.GotoTop()
	}
	if pane.cursor >= len(entry.Consultants) {
		pane.cursor = len(entry.Consultants) - 1
	}
	if pane.cursor < 0 && len(entry.Consultants) > 0 {
		pane.cursor = 0
	}

	pane.rerender()
	pane.ensureSelectedVisible()
}

// Clear empties the pane (no capability selected).
func (pane *DetailPane) Clear() {
	pane.hasCapability = false
	pane.name = ""
	pane.entry = capability.Capability{}
	pane.header = ""
	pane.cursor = -1
	pane.rosterStart = 0
	pane.viewport.SetContent("")
	pane.viewport.GotoTop()
}

// Name returns the displayed capability name, or "" when the pane is
// empty.
func (pane DetailPane) Name() string {
	if !pane.hasCapability {
		return ""
	}
	return pane.name
}

// SelectedConsultant returns the email under the consultant cursor.
// The second return is false when the pane is empty or the roster has
// no rows.
func (pane DetailPane) SelectedConsultant() (string, bool) {
	if !pane.hasCapability || pane.cursor < 0 || pane.cursor >= len(pane.entry.Consultants) {
		return "", false
	}
	return pane.entry.Consultants[pane.cursor], true
}

// MoveUp moves the consultant cursor up one row, scrolling the body if
// needed. With an empty roster it scrolls the body a line instead.
func (pane *DetailPane) MoveUp() {
	if len(pane.entry.Consultants) == 0 {
		pane.viewport.LineUp(1)
		return
	}
	if pane.cursor > 0 {
		pane.cursor--
		pane.rerender()
		pane.ensureSelectedVisible()
	}
}

// MoveDown moves the consultant cursor down one row, scrolling the
// body if needed. With an empty roster it scrolls the body a line
// instead.
func (pane *DetailPane) MoveDown() {
	if len(pane.entry.Consultants) == 0 {
		pane.viewport.LineDown(1)
		return
	}
	if pane.cursor < len(pane.entry.Consultants)-1 {
		pane.cursor++
		pane.rerender()
		pane.ensureSelectedVisible()
	}
}

// HalfPageUp scrolls the body up half a page without moving the
// consultant cursor.
func (pane *DetailPane) HalfPageUp() {
	pane.viewport.HalfViewUp()
}

// HalfPageDown scrolls the body down half a page without moving the
// consultant cursor.
func (pane *DetailPane) HalfPageDown() {
	pane.viewport.HalfViewDown()
}

// GotoTop scrolls the body to the beginning and selects the first
// consultant.
func (pane *DetailPane) GotoTop() {
	pane.viewport.GotoTop()
	if len(pane.entry.Consultants) > 0 && pane.cursor != 0 {
		pane.cursor = 0
		pane.rerender()
	}
}

// GotoBottom scrolls the body to the end and selects the last
// consultant.
func (pane *DetailPane) GotoBottom() {
	if count := len(pane.entry.Consultants); count > 0 && pane.cursor != count-1 {
		pane.cursor = count - 1
		pane.rerender()
	}
	maxOffset := pane.viewport.TotalLineCount() - pane.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	pane.viewport.SetYOffset(maxOffset)
}

// ensureSelectedVisible scrolls the viewport so the selected roster
// row is on screen.
func (pane *DetailPane) ensureSelectedVisible() {
	if pane.cursor < 0 {
		return
	}
	line := pane.rosterStart + pane.cursor
	if line < pane.viewport.YOffset {
		pane.viewport.SetYOffset(line)
	} else if line >= pane.viewport.YOffset+pane.viewport.Height {
		pane.viewport.SetYOffset(line - pane.viewport.Height + 1)
	}
}

// rerender rebuilds the header string and the viewport body from the
// stored capability at the current width.
func (pane *DetailPane) rerender() {
	contentWidth := pane.contentWidth()
	pane.header = pane.renderHeader(contentWidth)

	body, rosterStart := pane.renderBody(contentWidth)
	pane.rosterStart = rosterStart
	pane.viewport.SetContent(body)
}

// renderHeader renders the fixed header: exactly detailHeaderLines
// lines describing the capability.
func (pane DetailPane) renderHeader(contentWidth int) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(pane.theme.HeaderForeground).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(pane.theme.NormalText)

	name := pane.name
	if lipgloss.Width(name) > contentWidth {
		name = truncateString(name, contentWidth-1) + "…"
	}

	capacityStyle := lipgloss.NewStyle().
		Foreground(pane.theme.CapacityColor(pane.entry.Capacity))
	capacityLine := labelStyle.Render("Capacity: ") +
		capacityStyle.Render(fmt.Sprintf("%d hours/week", pane.entry.Capacity)) +
		labelStyle.Render("  ·  Consultants: ") +
		valueStyle.Render(fmt.Sprintf("%d", len(pane.entry.Consultants)))

	verticals := "—"
	if len(pane.entry.IndustryVerticals) > 0 {
		verticals = strings.Join(pane.entry.IndustryVerticals, ", ")
	}

	separator := lipgloss.NewStyle().
		Foreground(pane.theme.BorderColor).
		Render(strings.Repeat("─", contentWidth))

	lines := []string{
		nameStyle.Render(name),
		labelStyle.Render("Practice area: ") + valueStyle.Render(pane.entry.PracticeArea),
		capacityLine,
		labelStyle.Render("Verticals: ") + valueStyle.Render(verticals),
		separator,
	}
	for index, line := range lines {
		lines[index] = lipgloss.NewStyle().MaxWidth(contentWidth).Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderBody renders the scrollable body: the markdown description
// followed by the consultant roster (or the empty-roster placeholder).
// Returns the body and the line number of the first roster row.
//
// Roster rows are rendered after the description so their line numbers
// are stable: the description is wrapped to the content width before
// counting, and each roster row is clamped to one line.
func (pane DetailPane) renderBody(contentWidth int) (string, int) {
	var lines []string

	description := strings.TrimSpace(pane.entry.Description)
	if description != "" {
		rendered := renderTerminalMarkdown(description, pane.theme, contentWidth)
		// Re-wrap so no line (e.g. inside a code block) exceeds the
		// viewport width; the viewport does not clip horizontally.
		rendered = lipgloss.NewStyle().Width(contentWidth).Render(rendered)
		lines = append(lines, strings.Split(rendered, "\n")...)
		lines = append(lines, "")
	}

	sectionStyle := lipgloss.NewStyle().
		Foreground(pane.theme.HeaderForeground).
		Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
	lines = append(lines, sectionStyle.Render("Consultants")+
		countStyle.Render(fmt.Sprintf(" (%d)", len(pane.entry.Consultants))))

	rosterStart := len(lines)

	if len(pane.entry.Consultants) == 0 {
		placeholder := lipgloss.NewStyle().
			Foreground(pane.theme.FaintText).
			Italic(true).
			Render(emptyRosterPlaceholder)
		lines = append(lines, placeholder)
	} else {
		for index, email := range pane.entry.Consultants {
			lines = append(lines, pane.renderRosterRow(email, index == pane.cursor, contentWidth))
		}
	}

	return strings.Join(lines, "\n"), rosterStart
}

// renderRosterRow renders one consultant email row. The selected row
// carries the highlight background and a marker; activating the
// Unregister binding removes that email from the capability.
func (pane DetailPane) renderRosterRow(email string, selected bool, contentWidth int) string {
	display := email
	if lipgloss.Width(display) > contentWidth-2 {
		display = truncateString(display, contentWidth-3) + "…"
	}

	if selected {
		style := lipgloss.NewStyle().
			Background(pane.theme.SelectedBackground).
			Foreground(pane.theme.SelectedForeground)
		return style.MaxWidth(contentWidth).Render("▸ " + display)
	}

	style := lipgloss.NewStyle().Foreground(pane.theme.NormalText)
	return style.MaxWidth(contentWidth).Render("  " + display)
}

// View renders the pane at its current size. The focused flag controls
// the scrollbar accent.
func (pane DetailPane) View(focused bool) string {
	contentWidth := pane.contentWidth()

	if !pane.hasCapability {
		emptyStyle := lipgloss.NewStyle().
			Foreground(pane.theme.FaintText)

		contentStyle := lipgloss.NewStyle().
			PaddingLeft(1).
			Width(pane.width - 1).
			Height(pane.height)

		content := contentStyle.Render(
			lipgloss.Place(
				contentWidth, pane.height,
				lipgloss.Center, lipgloss.Center,
				emptyStyle.Render("Select a capability to view its roster"),
			),
		)

		scrollbar := tui.RenderScrollbar(
			pane.theme, pane.height,
			0, pane.height, 0,
			focused,
		)
		return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
	}

	// Content column: fixed header plus the scrollable body, padded to
	// exactly pane.height lines.
	paddingStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(pane.width - 1)

	headerView := paddingStyle.Height(detailHeaderLines).Render(pane.header)
	bodyView := paddingStyle.Height(pane.bodyHeight()).Render(pane.viewport.View())
	content := headerView + "\n" + bodyView

	// Scrollbar: blank column beside the header, actual scrollbar
	// beside the body, so the bar only covers the region it scrolls.
	headerColumn := lipgloss.NewStyle().
		Width(1).
		Height(detailHeaderLines).
		Render("")
	bodyScrollbar := tui.RenderScrollbar(
		pane.theme, pane.bodyHeight(),
		pane.viewport.TotalLineCount(), pane.viewport.Height, pane.viewport.YOffset,
		focused,
	)
	scrollColumn := headerColumn + "\n" + bodyScrollbar

	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollColumn)
}
