package directory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/logger"
)

// contactsFile is the on-disk layout of a contacts file:
//
//	contacts:
//	  - id: "1"
//	    name: Alex Johnson
//	    phone: (555) 123-4567
//	    last_message: Hey, how are you doing?
//	    last_message_ago: 2m
//	    unread: 2
//	    history:
//	      - text: Hey! How are you doing today?
//	        direction: inbound
//	        status: read
//	        ago: 1h
type contactsFile struct {
	Contacts []contactEntry `yaml:"contacts"`
}

type contactEntry struct {
	ID             string         `yaml:"id"`
	Name           string         `yaml:"name"`
	Phone          string         `yaml:"phone"`
	Avatar         string         `yaml:"avatar"`
	LastMessage    string         `yaml:"last_message"`
	LastMessageAgo string         `yaml:"last_message_ago"`
	Unread         int            `yaml:"unread"`
	History        []historyEntry `yaml:"history"`
}

type historyEntry struct {
	Text      string `yaml:"text"`
	Direction string `yaml:"direction"`
	Status    string `yaml:"status"`
	Ago       string `yaml:"ago"`
}

// LoadFile reads a YAML contacts file. Relative times in the file are
// resolved against now.
func LoadFile(path string, now time.Time) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ContactsLoadFailed(path, err)
	}
	d, err := Parse(data, now)
	if err != nil {
		return nil, err
	}
	logger.WithComponent("directory").Info("loaded contacts", "path", path, "count", d.Len())
	return d, nil
}

// Parse decodes a YAML contacts document. Contacts without a history get the
// standard seed history.
func Parse(data []byte, now time.Time) (*Directory, error) {
	var f contactsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.E(errors.Op("directory.Parse"), errors.KindConfig, "invalid contacts YAML", err)
	}
	if len(f.Contacts) == 0 {
		return nil, errors.ContactsInvalid("contacts file lists no contacts")
	}

	contacts := make([]Contact, 0, len(f.Contacts))
	for _, e := range f.Contacts {
		c, err := e.toContact(now)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return New(contacts)
}

func (e contactEntry) toContact(now time.Time) (Contact, error) {
	c := Contact{
		ID:                 e.ID,
		DisplayName:        e.Name,
		PhoneNumber:        e.Phone,
		AvatarRef:          e.Avatar,
		LastMessagePreview: e.LastMessage,
		UnreadCount:        e.Unread,
	}
	if e.Unread < 0 {
		return Contact{}, errors.ContactsInvalid(fmt.Sprintf("contact %s: unread count cannot be negative", e.ID))
	}
	if e.LastMessageAgo != "" {
		ago, err := time.ParseDuration(e.LastMessageAgo)
		if err != nil {
			return Contact{}, errors.ContactsInvalid(fmt.Sprintf("contact %s: bad last_message_ago %q", e.ID, e.LastMessageAgo))
		}
		c.LastMessageAt = now.Add(-ago)
	}

	if len(e.History) == 0 {
		c.History = SeedHistory(now)
		return c, nil
	}
	for i, h := range e.History {
		m, err := h.toMessage(now)
		if err != nil {
			return Contact{}, errors.ContactsInvalid(fmt.Sprintf("contact %s: history entry %d: %v", e.ID, i+1, err))
		}
		m.ID = fmt.Sprintf("%s-%d", e.ID, i+1)
		c.History = append(c.History, m)
	}
	return c, nil
}

func (h historyEntry) toMessage(now time.Time) (conversation.Message, error) {
	m := conversation.Message{Text: h.Text, Timestamp: now, Direction: conversation.Inbound, Status: conversation.Read}
	if h.Text == "" {
		return m, fmt.Errorf("empty text")
	}
	if h.Direction != "" {
		dir, err := conversation.ParseDirection(h.Direction)
		if err != nil {
			return m, err
		}
		m.Direction = dir
	}
	if h.Status != "" {
		st, err := conversation.ParseStatus(h.Status)
		if err != nil {
			return m, err
		}
		m.Status = st
	}
	if h.Ago != "" {
		ago, err := time.ParseDuration(h.Ago)
		if err != nil {
			return m, fmt.Errorf("bad ago %q", h.Ago)
		}
		m.Timestamp = now.Add(-ago)
	}
	return m, nil
}
