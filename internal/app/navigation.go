package app

import (
	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/ui"
)

// selectContact opens c's conversation. Choosing a different contact retires
// the current store and starts a fresh one from c's seed history; choosing
// the open contact again only moves focus to the composer.
func (m *Model) selectContact(c directory.Contact) {
	if m.selected != nil && m.selected.ID == c.ID && m.store != nil {
		m.focusChat()
		return
	}

	m.selected = &c
	m.mountConversation()
	m.contacts.SetActive(c.ID)
	m.log.Info("contact selected", "contact", c.ID, "store", m.store.ID())
	m.focusChat()
}

// mountConversation retires any current store and binds the chat panel to a
// fresh one seeded from the selected contact's history.
func (m *Model) mountConversation() {
	m.discardStore()
	if m.selected == nil {
		return
	}
	c := *m.selected
	opts := append([]conversation.Option{conversation.WithClock(m.now)}, m.storeOpts...)
	m.store = conversation.NewStore(c.ID, c.Seed(), opts...)
	m.chat.SetConversation(c, m.store)
}

// closeConversation clears the selection and returns to the directory.
func (m *Model) closeConversation() {
	m.discardStore()
	m.selected = nil
	m.chat.ClearConversation()
	m.contacts.SetActive("")
	m.focusContacts()
}

// discardStore retires the current store. Transitions it scheduled are
// dropped when they arrive.
func (m *Model) discardStore() {
	if m.store == nil {
		return
	}
	m.log.Debug("discarding store", "store", m.store.ID(), "contact", m.store.ContactID())
	m.store.Discard()
	m.store = nil
}

func (m *Model) focusChat() {
	m.view = ViewConversation
	m.contacts.SetFocused(false)
	m.chat.SetFocused(true)
	m.updateHeader()
}

func (m *Model) focusContacts() {
	m.view = ViewDirectory
	m.chat.SetFocused(false)
	m.contacts.SetFocused(true)
	m.updateHeader()
}

// openProfile replaces the split layout with a fresh profile panel. The
// conversation store is retired; the selected contact is kept.
func (m *Model) openProfile() {
	m.leaveConversation()
	m.profile = ui.NewProfile(account.DefaultProfile(m.number))
	m.view = ViewProfile
	m.updateSizes()
	m.updateHeader()
}

// openSettings replaces the split layout with a fresh settings panel.
func (m *Model) openSettings() {
	m.leaveConversation()
	m.settings = ui.NewSettings(account.DefaultSettings())
	m.view = ViewSettings
	m.updateSizes()
	m.updateHeader()
}

func (m *Model) leaveConversation() {
	m.discardStore()
	m.contacts.SetFocused(false)
	m.chat.SetFocused(false)
}

// backToDirectory leaves a panel. A selected contact comes back with a
// conversation restarted from its seed history.
func (m *Model) backToDirectory() {
	if m.profile != nil && m.profile.IsEditing() {
		m.profile.CancelEdit()
	}
	m.mountConversation()
	m.focusContacts()
}

// updateHeader shows what the content area is about.
func (m *Model) updateHeader() {
	switch m.view {
	case ViewProfile:
		m.header.SetContactName("Profile")
		m.header.SetSubtitle("")
	case ViewSettings:
		m.header.SetContactName("Settings")
		m.header.SetSubtitle("")
	default:
		if m.selected != nil {
			m.header.SetContactName(m.selected.DisplayName)
			m.header.SetSubtitle(m.selected.PhoneNumber)
		} else {
			m.header.SetContactName("")
			m.header.SetSubtitle("")
		}
	}
}
