package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of bindings the footer shows.
type FooterMode int

const (
	FooterDirectory FooterMode = iota
	FooterConversation
	FooterSearch
	FooterProfile
	FooterProfileEdit
	FooterSettings
	FooterRegistration
)

// FlashType controls the icon and color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible.
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient notice shown in place of the key bindings.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible.
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after one second.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	mode         FooterMode
	chatFocused  bool
	hasContact   bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open chat"},
			{Key: "/", Desc: "search"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "p", Desc: "profile"},
			{Key: "s", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode FooterMode, hasContact, chatFocused bool) {
	f.mode = mode
	f.hasContact = hasContact
	f.chatFocused = chatFocused
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings for the directory view
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired drops the flash message if it has expired and reports
// whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) currentBindings() []KeyBinding {
	switch f.mode {
	case FooterRegistration:
		return []KeyBinding{
			{Key: "0-9", Desc: "phone number"},
			{Key: "enter", Desc: "continue"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case FooterSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "keep filter"},
			{Key: "esc", Desc: "clear"},
		}
	case FooterProfile:
		return []KeyBinding{
			{Key: "e", Desc: "edit"},
			{Key: "esc", Desc: "back"},
		}
	case FooterProfileEdit:
		return []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "ctrl+s", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case FooterSettings:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "space", Desc: "toggle"},
			{Key: "esc", Desc: "back"},
		}
	case FooterConversation:
		if f.chatFocused {
			return []KeyBinding{
				{Key: "enter", Desc: "send"},
				{Key: "ctrl+y", Desc: "copy last"},
				{Key: "tab", Desc: "switch pane"},
				{Key: "pgup/dn", Desc: "scroll"},
				{Key: "esc", Desc: "close chat"},
			}
		}
	}

	var out []KeyBinding
	for _, b := range f.bindings {
		// Can't switch to chat without one
		if b.Key == "tab" && !f.hasContact {
			continue
		}
		out = append(out, b)
	}
	return out
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.currentBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	default:
		icon = "ℹ"
	}
	return lipgloss.NewStyle().Foreground(color).Render(icon + " " + f.flashMessage.Text)
}
