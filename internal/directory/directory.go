// Package directory holds the contact list shown in the sidebar along with
// each contact's seed conversation history.
package directory

import (
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/errors"
)

// Contact is an immutable mock contact record.
type Contact struct {
	ID                 string
	DisplayName        string
	PhoneNumber        string
	AvatarRef          string
	LastMessagePreview string
	LastMessageAt      time.Time
	UnreadCount        int

	// History seeds the conversation each time the contact is opened.
	History []conversation.Message
}

// Seed returns a copy of the contact's seed history.
func (c Contact) Seed() []conversation.Message {
	out := make([]conversation.Message, len(c.History))
	copy(out, c.History)
	return out
}

// Directory is an ordered, read-only list of contacts.
type Directory struct {
	contacts []Contact
	byID     map[string]int
}

// New builds a directory from contacts, preserving their order.
// Duplicate or empty ids and empty names are rejected.
func New(contacts []Contact) (*Directory, error) {
	d := &Directory{
		contacts: make([]Contact, 0, len(contacts)),
		byID:     make(map[string]int, len(contacts)),
	}
	for i, c := range contacts {
		if c.ID == "" {
			return nil, errors.ContactsInvalid(fmt.Sprintf("contact at position %d has no id", i+1))
		}
		if c.DisplayName == "" {
			return nil, errors.ContactsInvalid(fmt.Sprintf("contact %s has no name", c.ID))
		}
		if _, dup := d.byID[c.ID]; dup {
			return nil, errors.ContactsInvalid(fmt.Sprintf("duplicate contact id %s", c.ID))
		}
		d.byID[c.ID] = len(d.contacts)
		d.contacts = append(d.contacts, c)
	}
	return d, nil
}

// Len returns the number of contacts.
func (d *Directory) Len() int { return len(d.contacts) }

// At returns the contact at position i.
func (d *Directory) At(i int) Contact { return d.contacts[i] }

// All returns a copy of the contacts in display order.
func (d *Directory) All() []Contact {
	out := make([]Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

// Get looks up a contact by id.
func (d *Directory) Get(id string) (Contact, error) {
	i, ok := d.byID[id]
	if !ok {
		return Contact{}, errors.ContactNotFound(id)
	}
	return d.contacts[i], nil
}

// searchSource adapts the directory to fuzzy.Source. Each contact is matched
// on its name followed by its phone number.
type searchSource []Contact

func (s searchSource) String(i int) string { return s[i].DisplayName + " " + s[i].PhoneNumber }
func (s searchSource) Len() int            { return len(s) }

// Search returns contacts matching query, best match first. An empty query
// returns every contact in display order.
func (d *Directory) Search(query string) []Contact {
	if query == "" {
		return d.All()
	}
	matches := fuzzy.FindFrom(query, searchSource(d.contacts))
	out := make([]Contact, 0, len(matches))
	for _, m := range matches {
		out = append(out, d.contacts[m.Index])
	}
	return out
}
