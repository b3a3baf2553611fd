package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatsync/chatsync/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()
	footer := m.footer.View()

	if m.view == ViewRegistration {
		return lipgloss.JoinVertical(lipgloss.Left, m.registration.View(), footer)
	}

	var content string
	switch m.view {
	case ViewProfile:
		content = m.profile.View()
	case ViewSettings:
		content = m.settings.View()
	default:
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.contacts.View(),
			m.chat.View(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		footer,
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	var mode ui.FooterMode
	switch m.view {
	case ViewRegistration:
		mode = ui.FooterRegistration
	case ViewConversation:
		mode = ui.FooterConversation
	case ViewProfile:
		mode = ui.FooterProfile
		if m.profile.IsEditing() {
			mode = ui.FooterProfileEdit
		}
	case ViewSettings:
		mode = ui.FooterSettings
	default:
		mode = ui.FooterDirectory
		if m.contacts.IsSearchMode() {
			mode = ui.FooterSearch
		}
	}
	m.footer.SetContext(mode, m.selected != nil, m.chat.IsFocused())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.registration.SetSize(ctx.TerminalWidth, ctx.TerminalHeight-ctx.FooterHeight)
	m.contacts.SetSize(ctx.ContactsWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
	m.settings.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	if m.profile != nil {
		m.profile.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	}
}
