package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/directory"
)

// Chat is the conversation panel: message history plus composer.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	contact     *directory.Contact
	store       *conversation.Store
	unsubscribe func()
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = MessageCharLimit
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	chatPanelHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := max(ctx.InnerHeight(chatPanelHeight)-ChatHeaderHeight, 1)

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)

	ctx.Log("Chat.SetSize", "width", width, "height", height, "viewportHeight", viewportHeight)
	c.updateContent()
}

// SetFocused sets the focus state. The composer follows panel focus.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// IsTyping reports whether the presence line shows "typing...".
func (c *Chat) IsTyping() bool {
	return c.focused && c.contact != nil
}

// SetConversation binds the panel to a contact and its store, replacing any
// previous binding. The panel re-renders whenever the store changes.
func (c *Chat) SetConversation(contact directory.Contact, store *conversation.Store) {
	c.detach()
	c.contact = &contact
	c.store = store
	c.unsubscribe = store.Subscribe(func(conversation.Event) {
		c.updateContent()
	})
	c.input.Reset()
	c.updateContent()
}

// ClearConversation unbinds the panel and shows the empty placeholder.
func (c *Chat) ClearConversation() {
	c.detach()
	c.contact = nil
	c.store = nil
	c.input.Reset()
	c.updateContent()
}

func (c *Chat) detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// HasConversation reports whether a contact is open.
func (c *Chat) HasConversation() bool {
	return c.contact != nil
}

// GetInput returns the composer text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput empties the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// updateContent re-renders the message history into the viewport.
func (c *Chat) updateContent() {
	if c.store == nil {
		c.viewport.SetContent("")
		return
	}

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	for i, m := range c.store.Messages() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(renderBubble(m, wrapWidth))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused && c.contact != nil {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "home", "end", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			// Keys never reach the viewport while composing
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if c.contact == nil {
		return panelStyle.Width(c.width).Height(c.height).Render(renderEmptyChat())
	}

	chatPanelHeight := c.height - InputTotalHeight
	header := renderChatHeader(c.contact.DisplayName, directory.Initials(c.contact.DisplayName), c.IsTyping())
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, c.viewport.View()))

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
