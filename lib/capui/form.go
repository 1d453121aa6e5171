// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/tui"
)

// selectorPlaceholder is the label of the leading empty option in the
// capability selector. Its value is the empty string; submitting with
// it selected is rejected before any request is sent.
const selectorPlaceholder = "Select a capability"

// formLabelWidth is the width of the field label column inside the
// form, including the surrounding spaces ("` Capability: `").
const formLabelWidth = 13

// selectorOptions builds the capability dropdown options from a
// snapshot: exactly one leading placeholder option with an empty
// value, followed by one option per capability name in snapshot order.
func selectorOptions(snapshot capability.Snapshot) []tui.DropdownOption {
	options := make([]tui.DropdownOption, 0, snapshot.Len()+1)
	options = append(options, tui.DropdownOption{Label: selectorPlaceholder, Value: ""})
	for _, name := range snapshot.Names() {
		options = append(options, tui.DropdownOption{Label: name, Value: name})
	}
	return options
}

type formField int

const (
	fieldCapability formField = iota
	fieldEmail
)

// FormResult is the outcome of routing one key event to the form.
type FormResult int

const (
	// FormPending means the form consumed the key and stays open.
	FormPending FormResult = iota

	// FormCancelled means the user dismissed the form.
	FormCancelled

	// FormSubmitted means the user confirmed the form; the model reads
	// Capability and Email and issues the registration.
	FormSubmitted
)

// RegisterForm is the inline registration form: a capability selector
// backed by a dropdown overlay plus a single-line email input. The
// model opens it with the current snapshot's options, routes key
// events to HandleKey while it has focus, and splices its rendered
// lines over the main view.
type RegisterForm struct {
	theme tui.Theme

	options  []tui.DropdownOption
	selected string // Chosen capability name; "" means none yet.
	email    []rune

	field        formField
	dropdown     tui.DropdownOverlay
	dropdownOpen bool
}

// NewRegisterForm creates a closed, empty form.
func NewRegisterForm(theme tui.Theme) RegisterForm {
	return RegisterForm{theme: theme}
}

// Open resets the form for a new registration. preselect names the
// capability to start with (usually the list selection); when it is
// empty or not among the options, the selector starts on the
// placeholder. A preselected form starts with the email field focused
// since the capability is already chosen.
func (form *RegisterForm) Open(options []tui.DropdownOption, preselect string) {
	form.options = options
	form.selected = ""
	form.email = nil
	form.field = fieldCapability
	form.dropdownOpen = false

	if preselect == "" {
		return
	}
	for _, option := range options {
		if option.Value == preselect {
			form.selected = preselect
			form.field = fieldEmail
			return
		}
	}
}

// SetOptions replaces the selector options; called when the snapshot
// changes while the form is open. The current selection survives if
// its capability still exists, otherwise it resets to the placeholder.
func (form *RegisterForm) SetOptions(options []tui.DropdownOption) {
	form.options = options
	if form.selected == "" {
		return
	}
	for _, option := range options {
		if option.Value == form.selected {
			return
		}
	}
	form.selected = ""
	if form.dropdownOpen {
		form.openDropdown()
	}
}

// Options returns the current selector options.
func (form RegisterForm) Options() []tui.DropdownOption {
	return form.options
}

// Capability returns the selected capability name, or "" when the
// selector is on the placeholder.
func (form RegisterForm) Capability() string {
	return form.selected
}

// Email returns the typed email with surrounding whitespace removed.
func (form RegisterForm) Email() string {
	return strings.TrimSpace(string(form.email))
}

// DropdownOpen reports whether the capability dropdown overlay is
// showing.
func (form RegisterForm) DropdownOpen() bool {
	return form.dropdownOpen
}

// Dropdown returns a copy of the dropdown overlay for rendering.
func (form RegisterForm) Dropdown() tui.DropdownOverlay {
	return form.dropdown
}

// DropdownAnchor returns the screen position for the dropdown overlay
// given the form's own anchor: aligned with the capability value
// column, one line below the capability field.
func (form RegisterForm) DropdownAnchor(formX, formY int) (int, int) {
	return formX + 1 + formLabelWidth, formY + 2
}

func (form *RegisterForm) openDropdown() {
	cursor := 0
	for index, option := range form.options {
		if option.Value == form.selected && form.selected != "" {
			cursor = index
			break
		}
	}
	form.dropdown = tui.DropdownOverlay{Options: form.options, Cursor: cursor}
	form.dropdownOpen = true
}

// HandleKey routes one key event into the form. While the dropdown is
// open it captures everything; otherwise tab switches fields, enter
// opens the dropdown or submits, esc cancels, and printable characters
// edit the email input.
func (form *RegisterForm) HandleKey(message tea.KeyMsg) FormResult {
	if form.dropdownOpen {
		switch message.Type {
		case tea.KeyUp:
			form.dropdown.MoveUp()
		case tea.KeyDown:
			form.dropdown.MoveDown()
		case tea.KeyEnter:
			option := form.dropdown.Selected()
			form.selected = option.Value
			form.dropdownOpen = false
			if option.Value != "" {
				form.field = fieldEmail
			}
		case tea.KeyEsc:
			form.dropdownOpen = false
		case tea.KeyRunes:
			switch string(message.Runes) {
			case "k":
				form.dropdown.MoveUp()
			case "j":
				form.dropdown.MoveDown()
			}
		}
		return FormPending
	}

	switch message.Type {
	case tea.KeyEsc:
		return FormCancelled

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if form.field == fieldCapability {
			form.field = fieldEmail
		} else {
			form.field = fieldCapability
		}

	case tea.KeyEnter:
		if form.field == fieldCapability {
			form.openDropdown()
			return FormPending
		}
		return FormSubmitted

	case tea.KeyRunes:
		if form.field == fieldEmail {
			form.email = append(form.email, message.Runes...)
		}

	case tea.KeyBackspace:
		if form.field == fieldEmail && len(form.email) > 0 {
			form.email = form.email[:len(form.email)-1]
		}
	}
	return FormPending
}

// View renders the form as a bordered overlay box of equal-width
// lines, ready for splicing over the main view.
func (form RegisterForm) View(width int) []string {
	// Interior must fit the box title plus its corner runs; below that
	// the border math degenerates.
	interior := width - 2
	if interior < 24 {
		interior = 24
	}

	borderStyle := lipgloss.NewStyle().Foreground(form.theme.BorderColor)
	labelStyle := lipgloss.NewStyle().Foreground(form.theme.FaintText)
	focusedLabelStyle := lipgloss.NewStyle().Foreground(form.theme.FocusAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(form.theme.NormalText)
	placeholderStyle := lipgloss.NewStyle().Foreground(form.theme.FaintText).Italic(true)
	helpStyle := lipgloss.NewStyle().Foreground(form.theme.HelpText)

	title := " Register consultant "
	topFill := interior - lipgloss.Width(title) - 1
	if topFill < 0 {
		topFill = 0
	}
	top := borderStyle.Render("╭─") + lipgloss.NewStyle().
		Foreground(form.theme.HeaderForeground).Bold(true).Render(title) +
		borderStyle.Render(strings.Repeat("─", topFill)+"╮")

	capabilityLabel := labelStyle
	if form.field == fieldCapability {
		capabilityLabel = focusedLabelStyle
	}
	capabilityValue := placeholderStyle.Render(selectorPlaceholder)
	if form.selected != "" {
		capabilityValue = valueStyle.Render(form.selected)
	}
	capabilityLine := capabilityLabel.Render(" Capability: ") + capabilityValue +
		" " + labelStyle.Render("▾")

	emailLabel := labelStyle
	if form.field == fieldEmail {
		emailLabel = focusedLabelStyle
	}
	emailLine := emailLabel.Render(" Email:      ") + valueStyle.Render(string(form.email))
	if form.field == fieldEmail && !form.dropdownOpen {
		emailLine += lipgloss.NewStyle().
			Foreground(form.theme.FocusAccent).Bold(true).Render("▎")
	}

	helpLine := helpStyle.Render(" Enter submit · Tab switch field · Esc cancel")

	bottom := borderStyle.Render("╰" + strings.Repeat("─", interior) + "╯")

	contentStyle := lipgloss.NewStyle().Width(interior).MaxWidth(interior)
	border := borderStyle.Render("│")
	lines := []string{
		top,
		border + contentStyle.Render(capabilityLine) + border,
		border + contentStyle.Render(emailLine) + border,
		border + contentStyle.Render(helpLine) + border,
		bottom,
	}
	return lines
}
