package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/keys"
	"github.com/chatsync/chatsync/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)

	case StatusTransitionMsg:
		m.handleStatusTransition(msg)
		return m, nil

	case ui.RegisteredMsg:
		return m, m.handleRegistered(msg)

	case ui.ToastMsg:
		return m, m.handleToast(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	// Everything else (mouse wheel, form internals) goes to the active panel
	return m, m.updateActivePanel(msg)
}

// updateActivePanel forwards msg to whichever component owns input.
func (m *Model) updateActivePanel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.view {
	case ViewRegistration:
		m.registration, cmd = m.registration.Update(msg)
	case ViewDirectory:
		m.contacts, cmd = m.contacts.Update(msg)
	case ViewConversation:
		m.chat, cmd = m.chat.Update(msg)
	case ViewProfile:
		m.profile, cmd = m.profile.Update(msg)
	case ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return cmd
}

// handleKeyPress routes a key press. Global keys come first, then the
// bindings of the active view.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == keys.CtrlC {
		return tea.Quit
	}

	switch m.view {
	case ViewRegistration:
		return m.updateActivePanel(msg)
	case ViewDirectory:
		return m.handleDirectoryKey(msg)
	case ViewConversation:
		return m.handleConversationKey(msg)
	case ViewProfile:
		if key == keys.Escape && !m.profile.IsEditing() {
			m.backToDirectory()
			return nil
		}
		return m.updateActivePanel(msg)
	case ViewSettings:
		if key == keys.Escape {
			m.backToDirectory()
			return nil
		}
		return m.updateActivePanel(msg)
	}
	return nil
}

// handleDirectoryKey handles keys while the contact list has focus.
func (m *Model) handleDirectoryKey(msg tea.KeyPressMsg) tea.Cmd {
	// The search input owns every key while it is open
	if m.contacts.IsSearchMode() {
		return m.updateActivePanel(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case keys.Enter:
		if c := m.contacts.SelectedContact(); c != nil {
			m.selectContact(*c)
		}
		return nil
	case "/":
		return m.contacts.EnterSearchMode()
	case "p":
		m.openProfile()
		return nil
	case "s":
		m.openSettings()
		return nil
	case keys.Tab:
		if m.chat.HasConversation() {
			m.focusChat()
		}
		return nil
	case keys.Escape:
		if m.contacts.IsFiltered() {
			m.contacts.ExitSearchMode()
		}
		return nil
	}
	return m.updateActivePanel(msg)
}

// handleConversationKey handles keys while the chat composer has focus.
func (m *Model) handleConversationKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Enter:
		return m.sendMessage()
	case keys.Escape:
		m.closeConversation()
		return nil
	case keys.Tab:
		m.focusContacts()
		return nil
	case keys.CtrlY:
		return m.copyLastMessage()
	}
	return m.updateActivePanel(msg)
}
