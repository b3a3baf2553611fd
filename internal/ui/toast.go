package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/account"
)

// ToastMsg asks the app to show a transient confirmation.
type ToastMsg struct {
	Title       string
	Description string
}

// toastCmd wraps an account toast as a command.
func toastCmd(t account.Toast) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Title: t.Title, Description: t.Description}
	}
}
