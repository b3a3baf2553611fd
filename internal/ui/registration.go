package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatsync/chatsync/internal/keys"
	"github.com/chatsync/chatsync/internal/phone"
)

// RegisteredMsg is sent once the simulated verification delay has passed.
type RegisteredMsg struct {
	Phone string
}

// Registration is the phone-number gate shown before the main layout.
type Registration struct {
	input      textinput.Model
	connecting bool
	errText    string
	width      int
	height     int
}

// NewRegistration creates the gate with an empty, focused input.
func NewRegistration() *Registration {
	ti := textinput.New()
	ti.Placeholder = "(555) 123-4567"
	ti.CharLimit = phone.FormattedLen
	ti.Prompt = ""
	ti.Focus()

	return &Registration{input: ti}
}

// SetSize sets the available area
func (r *Registration) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.input.SetWidth(phone.FormattedLen + 1)
}

// Value returns the formatted number typed so far.
func (r *Registration) Value() string {
	return r.input.Value()
}

// SetValue pre-fills the input, formatting raw as a phone number.
func (r *Registration) SetValue(raw string) {
	r.input.SetValue(phone.Format(raw))
	r.input.CursorEnd()
}

// IsConnecting reports whether the number was accepted and the delay is running.
func (r *Registration) IsConnecting() bool {
	return r.connecting
}

// Error returns the current validation message, if any.
func (r *Registration) Error() string {
	return r.errText
}

// Update reformats the number on every keystroke and, on Enter with a
// complete number, starts the connection delay.
func (r *Registration) Update(msg tea.Msg) (*Registration, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || r.connecting {
		return r, nil
	}

	if keyMsg.String() == keys.Enter {
		value := r.input.Value()
		if !phone.IsComplete(value) {
			r.errText = "Enter a complete 10-digit phone number"
			return r, nil
		}
		r.errText = ""
		r.connecting = true
		r.input.Blur()
		GetViewContext().Log("Registration submitted", "phone", value)
		return r, registerAfterDelay(value)
	}

	// Let the textinput handle the raw keystroke with room for one more
	// character, then normalize.
	before := phone.Digits(r.input.Value())
	r.input.CharLimit = 0
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	digits := phone.Digits(r.input.Value())
	if keyMsg.String() == keys.Backspace && digits == before && len(digits) > 0 {
		// Backspace only removed punctuation; drop the last digit instead
		digits = digits[:len(digits)-1]
	}
	formatted := phone.Format(digits)
	r.input.SetValue(formatted)
	r.input.CursorEnd()
	r.input.CharLimit = phone.FormattedLen
	r.errText = ""
	return r, cmd
}

func registerAfterDelay(number string) tea.Cmd {
	return tea.Tick(RegistrationDelay, func(_ time.Time) tea.Msg {
		return RegisteredMsg{Phone: number}
	})
}

// View renders the gate centered in the available area.
func (r *Registration) View() string {
	var sb strings.Builder
	sb.WriteString(PageTitleStyle.Render("Welcome to chatsync"))
	sb.WriteString("\n")
	sb.WriteString(FieldLabelStyle.Render("Enter your phone number to get started"))
	sb.WriteString("\n\n")

	inputBox := ChatInputFocusedStyle.Width(phone.FormattedLen + 6).Render(r.input.View())
	sb.WriteString(inputBox)
	sb.WriteString("\n")

	switch {
	case r.connecting:
		sb.WriteString(StatusLoadingStyle.Render("Connecting..."))
	case r.errText != "":
		sb.WriteString(StatusErrorStyle.Render(r.errText))
	default:
		sb.WriteString(HelpStyle.Render("Press enter to continue"))
	}

	box := PanelFocusedStyle.Padding(1, 3).Render(sb.String())
	if r.width == 0 || r.height == 0 {
		return box
	}
	return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, box)
}
