package ui

import (
	"fmt"
	"net/mail"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/keys"
	"github.com/chatsync/chatsync/internal/phone"
)

// Profile shows the user's profile and edits it through a huh form.
type Profile struct {
	profile account.Profile
	before  account.Profile // profile when editing started
	editing bool
	form    *huh.Form
	width   int
	height  int
}

// NewProfile creates the panel for p.
func NewProfile(p account.Profile) *Profile {
	return &Profile{profile: p}
}

// SetSize sets the panel dimensions
func (p *Profile) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.form != nil {
		p.form = p.form.WithWidth(p.formWidth())
	}
}

func (p *Profile) formWidth() int {
	return min(FormWidth, max(GetViewContext().InnerWidth(p.width)-4, 20))
}

// Profile returns the saved profile.
func (p *Profile) Profile() account.Profile {
	return p.profile
}

// IsEditing reports whether the edit form is open.
func (p *Profile) IsEditing() bool {
	return p.editing
}

// StartEdit opens the form bound to the profile itself, so edits apply as
// they are typed.
func (p *Profile) StartEdit() tea.Cmd {
	p.before = p.profile
	p.editing = true

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(64).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}).
				Value(&p.profile.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				CharLimit(128).
				Validate(validateEmail).
				Value(&p.profile.Email),
			huh.NewInput().
				Title("Phone").
				CharLimit(phone.FormattedLen).
				Validate(func(s string) error {
					if s != "" && !phone.IsComplete(phone.Format(s)) {
						return fmt.Errorf("enter a 10-digit number")
					}
					return nil
				}).
				Value(&p.profile.Phone),
			huh.NewText().
				Title("Bio").
				CharLimit(280).
				Lines(3).
				Value(&p.profile.Bio),
		),
	).WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(p.formWidth())

	initHuhForm(p.form)
	return nil
}

func validateEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// CancelEdit closes the form. Edits already typed are kept.
func (p *Profile) CancelEdit() {
	p.editing = false
	p.form = nil
}

// Save tidies the edited fields, closes the form and raises the saved toast.
func (p *Profile) Save() tea.Cmd {
	if !p.editing {
		return nil
	}
	d := p.profile
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		d.Name = p.before.Name
	}
	if d.Phone != "" {
		d.Phone = phone.Format(d.Phone)
	}
	p.profile = d
	p.editing = false
	p.form = nil
	GetViewContext().Log("Profile saved", "name", d.Name)
	return toastCmd(d.SavedToast())
}

// Update handles messages
func (p *Profile) Update(msg tea.Msg) (*Profile, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyPressMsg)

	if !p.editing {
		if isKey && keyMsg.String() == "e" {
			return p, p.StartEdit()
		}
		return p, nil
	}

	if isKey {
		switch keyMsg.String() {
		case keys.CtrlS:
			return p, p.Save()
		case keys.Escape:
			p.CancelEdit()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.form, cmd = huhFormUpdate(p.form, msg)
	if p.form.State == huh.StateCompleted {
		return p, p.Save()
	}
	return p, cmd
}

// View renders the panel
func (p *Profile) View() string {
	ctx := GetViewContext()

	var sb strings.Builder
	sb.WriteString(PageTitleStyle.Render("Profile"))
	sb.WriteString("\n")

	if p.editing && p.form != nil {
		sb.WriteString(p.form.View())
		sb.WriteString("\n")
		sb.WriteString(HelpStyle.Render("ctrl+s save · esc cancel"))
	} else {
		avatar := AvatarStyle.Render(directory.Initials(p.profile.Name))
		sb.WriteString(avatar + " " + ContactNameStyle.Render(p.profile.Name))
		sb.WriteString("\n\n")
		for _, f := range []struct{ label, value string }{
			{"Email", p.profile.Email},
			{"Phone", p.profile.Phone},
			{"Bio", p.profile.Bio},
		} {
			value := f.value
			if value == "" {
				value = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("not set")
			} else {
				value = FieldValueStyle.Render(wrapText(value, max(ctx.InnerWidth(p.width)-4, 10)))
			}
			sb.WriteString(FieldLabelStyle.Render(f.label))
			sb.WriteString("\n")
			sb.WriteString(value)
			sb.WriteString("\n\n")
		}
		sb.WriteString(HelpStyle.Render("e edit · esc back"))
	}

	return PanelFocusedStyle.Padding(0, 1).Width(p.width).Height(p.height).Render(sb.String())
}
