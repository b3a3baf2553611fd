package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/clipboard"
	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/notification"
	"github.com/chatsync/chatsync/internal/ui"
)

// sendMessage submits the composer text to the open conversation. Blank
// input leaves everything, including the composer, untouched.
func (m *Model) sendMessage() tea.Cmd {
	if m.store == nil {
		return nil
	}
	msg, transitions, ok := m.store.Submit(m.chat.GetInput())
	if !ok {
		return nil
	}
	m.chat.ClearInput()
	m.log.Debug("message sent", "contact", m.store.ContactID(), "message", msg.ID)
	return m.scheduler.Schedule(transitions...)
}

// handleStatusTransition applies a due transition to the open store.
// Transitions of a retired store find no match and are dropped.
func (m *Model) handleStatusTransition(msg StatusTransitionMsg) {
	t := msg.Transition
	if m.store == nil || !m.store.Apply(t) {
		m.log.Debug("status transition dropped", "store", t.StoreID, "message", t.MessageID, "to", t.To.String())
	}
}

// copyLastMessage copies the newest message text of the open conversation.
func (m *Model) copyLastMessage() tea.Cmd {
	if m.store == nil {
		return nil
	}
	last, ok := m.store.Last()
	if !ok {
		return m.ShowFlashInfo("Nothing to copy")
	}
	if err := clipboard.WriteText(last.Text); err != nil {
		m.log.Warn("clipboard copy failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied message to clipboard")
}

// handleRegistered completes the registration gate and remembers the number.
func (m *Model) handleRegistered(msg ui.RegisteredMsg) tea.Cmd {
	if m.IsRegistered() {
		return nil
	}
	m.register(msg.Phone)
	m.log.Info("registered", "phone", msg.Phone)

	m.config.SetPhone(msg.Phone)
	return m.savePhoneOrFlash(msg.Phone)
}

// savePhoneOrFlash writes number into the config file on disk. The file is
// reloaded first so flag and environment overrides applied to the running
// config for this run are not persisted with it.
func (m *Model) savePhoneOrFlash(number string) tea.Cmd {
	saved, err := m.loadSavedConfig()
	if err == nil {
		saved.SetPhone(number)
		err = saved.Save()
	}
	if err != nil {
		m.log.Error("failed to save config", "error", err)
		return m.ShowFlashError("Failed to save config")
	}
	return nil
}

func (m *Model) loadSavedConfig() (*config.Config, error) {
	if path := m.config.Path(); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// handleToast shows a panel toast in the footer and, when enabled, on the
// desktop.
func (m *Model) handleToast(msg ui.ToastMsg) tea.Cmd {
	text := msg.Title
	if msg.Description != "" {
		text += ": " + msg.Description
	}
	cmds := []tea.Cmd{m.ShowFlashSuccess(text)}

	if m.config.GetDesktopNotifications() {
		title, description := msg.Title, msg.Description
		cmds = append(cmds, func() tea.Msg {
			// Failures are logged by the notification package
			_ = notification.Toast(title, description)
			return nil
		})
	}
	return tea.Batch(cmds...)
}
