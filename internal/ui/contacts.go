package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/keys"
)

// ContactList is the left panel listing directory entries.
type ContactList struct {
	dir          *directory.Directory
	contacts     []directory.Contact // rows currently displayed (filtered or all)
	filtered     bool
	selectedIdx  int
	activeID     string // contact whose conversation is open
	width        int
	height       int
	focused      bool
	scrollOffset int
	now          func() time.Time

	searchMode  bool
	searchInput textinput.Model
}

// NewContactList creates an empty contact list
func NewContactList() *ContactList {
	ti := textinput.New()
	ti.Placeholder = "search contacts..."
	ti.CharLimit = SearchCharLimit

	return &ContactList{
		searchInput: ti,
		now:         time.Now,
	}
}

// SetClock overrides the clock used for relative timestamps.
func (l *ContactList) SetClock(now func() time.Time) {
	l.now = now
}

// SetDirectory replaces the listed contacts and resets any filter.
func (l *ContactList) SetDirectory(d *directory.Directory) {
	l.dir = d
	l.contacts = d.All()
	l.filtered = false
	l.selectedIdx = 0
	l.scrollOffset = 0
}

// SetSize sets the panel dimensions
func (l *ContactList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the panel width
func (l *ContactList) Width() int {
	return l.width
}

// SetFocused sets the focus state
func (l *ContactList) SetFocused(focused bool) {
	l.focused = focused
}

// IsFocused returns the focus state
func (l *ContactList) IsFocused() bool {
	return l.focused
}

// SetActive marks the contact whose conversation is open. Pass "" to clear.
func (l *ContactList) SetActive(id string) {
	l.activeID = id
}

// Visible returns the rows currently shown.
func (l *ContactList) Visible() []directory.Contact {
	return l.contacts
}

// SelectedContact returns the highlighted contact, or nil if the list is empty.
func (l *ContactList) SelectedContact() *directory.Contact {
	if l.selectedIdx < 0 || l.selectedIdx >= len(l.contacts) {
		return nil
	}
	c := l.contacts[l.selectedIdx]
	return &c
}

// SelectContact moves the highlight to the contact with the given ID if it
// is visible.
func (l *ContactList) SelectContact(id string) bool {
	for i, c := range l.contacts {
		if c.ID == id {
			l.selectedIdx = i
			return true
		}
	}
	return false
}

// EnterSearchMode activates search mode
func (l *ContactList) EnterSearchMode() tea.Cmd {
	l.searchMode = true
	l.searchInput.SetValue("")
	l.applyFilter("")
	return l.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter
func (l *ContactList) ExitSearchMode() {
	l.searchMode = false
	l.searchInput.Blur()
	l.searchInput.SetValue("")
	l.applyFilter("")
}

// IsSearchMode returns whether search mode is active
func (l *ContactList) IsSearchMode() bool {
	return l.searchMode
}

// IsFiltered reports whether a search filter narrows the list.
func (l *ContactList) IsFiltered() bool {
	return l.filtered
}

// GetSearchQuery returns the current search query
func (l *ContactList) GetSearchQuery() string {
	return l.searchInput.Value()
}

// applyFilter narrows the displayed contacts to fuzzy matches for query.
func (l *ContactList) applyFilter(query string) {
	if l.dir == nil {
		return
	}
	l.contacts = l.dir.Search(query)
	l.filtered = query != ""

	if l.selectedIdx >= len(l.contacts) {
		l.selectedIdx = len(l.contacts) - 1
	}
	if l.selectedIdx < 0 {
		l.selectedIdx = 0
	}
	l.scrollOffset = 0
}

// Update handles messages
func (l *ContactList) Update(msg tea.Msg) (*ContactList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return l, nil
	}

	if l.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			l.ExitSearchMode()
			return l, nil
		case keys.Enter:
			// Leave search mode but keep the filter applied
			l.searchMode = false
			l.searchInput.Blur()
			return l, nil
		case keys.Up:
			l.move(-1)
			return l, nil
		case keys.Down:
			l.move(1)
			return l, nil
		default:
			var cmd tea.Cmd
			l.searchInput, cmd = l.searchInput.Update(msg)
			l.applyFilter(l.searchInput.Value())
			return l, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		l.move(-1)
	case keys.Down, "j":
		l.move(1)
	case keys.Home, "g":
		l.selectedIdx = 0
	case keys.End, "G":
		if len(l.contacts) > 0 {
			l.selectedIdx = len(l.contacts) - 1
		}
	}
	return l, nil
}

func (l *ContactList) move(delta int) {
	next := l.selectedIdx + delta
	if next < 0 || next >= len(l.contacts) {
		return
	}
	l.selectedIdx = next
}

// View renders the contact list
func (l *ContactList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(l.width)
	innerHeight := ctx.InnerHeight(l.height)

	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Chats"))
	innerHeight -= TitleHeight

	if l.searchMode || l.filtered {
		searchStyle := lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
		l.searchInput.SetWidth(innerWidth - 3) // Leave room for "/ "
		lines = append(lines, searchStyle.Render("/")+" "+l.searchInput.View())
		innerHeight--
	}

	if len(l.contacts) == 0 {
		empty := "No contacts."
		if l.filtered {
			empty = "No matches."
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(0, 1).
			Render(empty))
	} else {
		visibleRows := max(innerHeight/ContactRowHeight, 1)
		if l.selectedIdx < l.scrollOffset {
			l.scrollOffset = l.selectedIdx
		}
		if l.selectedIdx >= l.scrollOffset+visibleRows {
			l.scrollOffset = l.selectedIdx - visibleRows + 1
		}

		end := min(l.scrollOffset+visibleRows, len(l.contacts))
		for i := l.scrollOffset; i < end; i++ {
			lines = append(lines, l.renderContact(l.contacts[i], i == l.selectedIdx, innerWidth))
		}
	}

	return style.Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}

// renderContact renders one two-line row: avatar, name and time on top,
// preview and unread badge below.
func (l *ContactList) renderContact(c directory.Contact, selected bool, width int) string {
	itemStyle := ContactItemStyle
	if selected {
		itemStyle = ContactSelectedStyle
	}
	rowWidth := width - 2 // item padding

	avatar := AvatarStyle.Render(directory.Initials(c.DisplayName))
	avatarWidth := lipgloss.Width(avatar)

	when := ContactTimeStyle.Render(directory.RelativeTime(c.LastMessageAt, l.now()))
	nameWidth := rowWidth - avatarWidth - 1 - lipgloss.Width(when) - 1
	name := c.DisplayName
	if c.ID == l.activeID {
		name = "● " + name
	}
	name = ContactNameStyle.Render(runewidth.Truncate(name, max(nameWidth, 1), "…"))
	top := avatar + " " + name
	top += strings.Repeat(" ", max(rowWidth-lipgloss.Width(top)-lipgloss.Width(when), 1)) + when

	var badge string
	if c.UnreadCount > 0 {
		badge = UnreadBadgeStyle.Render(fmt.Sprintf("%d", c.UnreadCount))
	}
	indent := strings.Repeat(" ", avatarWidth+1)
	previewWidth := rowWidth - len(indent) - lipgloss.Width(badge) - 1
	preview := ContactPreviewStyle.Render(runewidth.Truncate(c.LastMessagePreview, max(previewWidth, 1), "…"))
	bottom := indent + preview
	if badge != "" {
		bottom += strings.Repeat(" ", max(rowWidth-lipgloss.Width(bottom)-lipgloss.Width(badge), 1)) + badge
	}

	return itemStyle.Width(width).Render(top + "\n" + bottom)
}
