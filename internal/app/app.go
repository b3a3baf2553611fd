package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/logger"
	"github.com/chatsync/chatsync/internal/phone"
	"github.com/chatsync/chatsync/internal/ui"
)

// ActiveView selects which screen the shell shows. Exactly one is active.
type ActiveView int

const (
	ViewRegistration ActiveView = iota
	ViewDirectory
	ViewConversation
	ViewProfile
	ViewSettings
)

// String returns a human-readable name for the view
func (v ActiveView) String() string {
	switch v {
	case ViewRegistration:
		return "Registration"
	case ViewDirectory:
		return "Directory"
	case ViewConversation:
		return "Conversation"
	case ViewProfile:
		return "Profile"
	case ViewSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header       *ui.Header
	footer       *ui.Footer
	contacts     *ui.ContactList
	chat         *ui.Chat
	registration *ui.Registration
	profile      *ui.Profile
	settings     *ui.Settings

	width  int
	height int
	view   ActiveView
	number string // registered phone number

	dir       *directory.Directory
	selected  *directory.Contact
	store     *conversation.Store
	scheduler Scheduler

	now       func() time.Time
	storeOpts []conversation.Option
	log       *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithScheduler replaces the real-time scheduler for status transitions.
func WithScheduler(s Scheduler) Option {
	return func(m *Model) { m.scheduler = s }
}

// WithClock sets the time source for message timestamps and relative times.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithStoreOptions passes extra options to every conversation store.
func WithStoreOptions(opts ...conversation.Option) Option {
	return func(m *Model) { m.storeOpts = append(m.storeOpts, opts...) }
}

// WithVersion sets the version shown in logs.
func WithVersion(v string) Option {
	return func(m *Model) { m.version = v }
}

// New creates the shell over dir. If the config carries a complete phone
// number, the registration gate is skipped.
func New(cfg *config.Config, dir *directory.Directory, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:       cfg,
		header:       ui.NewHeader(),
		footer:       ui.NewFooter(),
		contacts:     ui.NewContactList(),
		chat:         ui.NewChat(),
		registration: ui.NewRegistration(),
		settings:     ui.NewSettings(account.DefaultSettings()),
		dir:          dir,
		scheduler:    TickScheduler{},
		now:          time.Now,
		log:          logger.WithComponent("app"),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.contacts.SetClock(m.now)
	m.contacts.SetDirectory(dir)

	number := phone.Format(cfg.GetPhone())
	if phone.IsComplete(number) {
		m.register(number)
	} else {
		m.view = ViewRegistration
		if number != "" {
			m.registration.SetValue(number)
		}
	}

	m.log.Info("app created", "version", m.version, "contacts", dir.Len(), "view", m.view.String())
	return m
}

// register leaves the gate and shows the directory.
func (m *Model) register(number string) {
	m.number = number
	m.profile = ui.NewProfile(account.DefaultProfile(number))
	m.view = ViewDirectory
	m.contacts.SetFocused(true)
	m.chat.SetFocused(false)
	m.updateSizes()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// CurrentView returns the active screen.
func (m *Model) CurrentView() ActiveView {
	return m.view
}

// IsRegistered reports whether the registration gate has been passed.
func (m *Model) IsRegistered() bool {
	return m.view != ViewRegistration
}

// SelectedContact returns the open contact, or nil.
func (m *Model) SelectedContact() *directory.Contact {
	return m.selected
}

// Store returns the store of the open conversation, or nil.
func (m *Model) Store() *conversation.Store {
	return m.store
}

// Profile returns the current profile values.
func (m *Model) Profile() account.Profile {
	if m.profile == nil {
		return account.Profile{}
	}
	return m.profile.Profile()
}

// Settings returns the current settings values.
func (m *Model) Settings() *account.Settings {
	return m.settings.Values()
}

// Footer exposes the footer, mainly for flash inspection.
func (m *Model) Footer() *ui.Footer {
	return m.footer
}
