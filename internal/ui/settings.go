package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/keys"
)

// settingsAction identifies a non-toggle row.
type settingsAction int

const (
	actionNone settingsAction = iota
	actionClearCache
	actionLogOut
)

// settingsRow is one selectable line: a toggle or an action button.
type settingsRow struct {
	section string
	label   string
	key     account.SettingKey
	action  settingsAction
}

var settingsRows = []settingsRow{
	{section: "Appearance", label: "Dark Mode", key: account.DarkMode},
	{section: "Notifications", label: "Push Notifications", key: account.Notifications},
	{section: "Notifications", label: "Message Sounds", key: account.SoundEnabled},
	{section: "Privacy", label: "Read Receipts", key: account.ReadReceipts},
	{section: "Privacy", label: "Show Online Status", key: account.OnlineStatus},
	{section: "Data & Storage", label: "Auto-download Media", key: account.AutoDownload},
	{section: "Data & Storage", label: "Data Usage Alerts", key: account.DataUsage},
	{section: "Data & Storage", label: "Clear Cache", action: actionClearCache},
	{section: "Account", label: "Log Out", action: actionLogOut},
}

// Settings lists boolean preferences and account actions.
type Settings struct {
	settings *account.Settings
	cursor   int
	width    int
	height   int
}

// NewSettings creates the panel over s.
func NewSettings(s *account.Settings) *Settings {
	return &Settings{settings: s}
}

// SetSize sets the panel dimensions
func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Values returns the underlying preferences.
func (s *Settings) Values() *account.Settings {
	return s.settings
}

// Cursor returns the index of the highlighted row.
func (s *Settings) Cursor() int {
	return s.cursor
}

// Activate toggles or triggers the highlighted row and returns its toast.
func (s *Settings) Activate() tea.Cmd {
	row := settingsRows[s.cursor]
	switch row.action {
	case actionClearCache:
		return toastCmd(account.ClearCacheToast())
	case actionLogOut:
		return toastCmd(account.LogOutToast())
	}
	toast := s.settings.Toggle(row.key)
	GetViewContext().Log("Setting toggled", "key", string(row.key), "value", s.settings.Get(row.key))
	return toastCmd(toast)
}

// Update handles messages
func (s *Settings) Update(msg tea.Msg) (*Settings, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.Down, "j":
		if s.cursor < len(settingsRows)-1 {
			s.cursor++
		}
	case keys.Home, "g":
		s.cursor = 0
	case keys.End, "G":
		s.cursor = len(settingsRows) - 1
	case keys.Space, keys.Enter:
		return s, s.Activate()
	}
	return s, nil
}

// View renders the panel
func (s *Settings) View() string {
	rowWidth := max(GetViewContext().InnerWidth(s.width)-2, 20)

	var sb strings.Builder
	sb.WriteString(PageTitleStyle.Render("Settings"))
	sb.WriteString("\n")

	section := ""
	for i, row := range settingsRows {
		if row.section != section {
			if section != "" {
				sb.WriteString("\n")
			}
			section = row.section
			sb.WriteString(SectionTitleStyle.Render(section))
			sb.WriteString("\n")
		}

		prefix := "  "
		if i == s.cursor {
			prefix = "> "
		}

		var line string
		switch row.action {
		case actionClearCache:
			line = prefix + ActionStyle.Render("[ "+row.label+" ]")
		case actionLogOut:
			line = prefix + DangerActionStyle.Render("[ "+row.label+" ]")
		default:
			state := ToggleOffStyle.Render("off")
			if s.settings.Get(row.key) {
				state = ToggleOnStyle.Render("on")
			}
			label := prefix + row.label
			pad := max(rowWidth-len(label)-3, 1)
			line = label + strings.Repeat(" ", pad) + state
		}

		if i == s.cursor {
			line = SelectedRowStyle.Width(rowWidth).Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return PanelFocusedStyle.Padding(0, 1).Width(s.width).Height(s.height).Render(strings.TrimRight(sb.String(), "\n"))
}
