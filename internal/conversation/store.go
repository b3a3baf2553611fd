package conversation

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chatsync/chatsync/internal/logger"
)

// Delays after submission at which an outbound message advances.
const (
	SentDelay      = 500 * time.Millisecond
	DeliveredDelay = 1000 * time.Millisecond
)

// Transition is a deferred status change for one message. The caller owns the
// timer: once Delay has elapsed it hands the transition back to Store.Apply.
type Transition struct {
	StoreID   string
	MessageID string
	To        Status
	Delay     time.Duration
}

// EventKind distinguishes store notifications.
type EventKind int

const (
	EventAppended EventKind = iota
	EventStatusChanged
)

func (k EventKind) String() string {
	if k == EventAppended {
		return "appended"
	}
	return "status_changed"
}

// Event is delivered to subscribers whenever the message list changes.
type Event struct {
	Kind    EventKind
	Message Message
	Index   int
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store is the ordered message list of the currently open conversation.
//
// A Store is owned by the Bubble Tea event loop and is not safe for
// concurrent use. Once Discard is called it ignores all further input,
// including transitions that were scheduled before the discard.
type Store struct {
	id        string
	contactID string
	messages  []Message
	index     map[string]int
	subs      []subscriber
	nextSub   int
	discarded bool

	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to stamp submitted messages.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the generator for new message ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger overrides the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates a store for contactID holding a copy of seed, in order.
func NewStore(contactID string, seed []Message, opts ...Option) *Store {
	s := &Store{
		id:        uuid.NewString(),
		contactID: contactID,
		messages:  make([]Message, 0, len(seed)+8),
		index:     make(map[string]int, len(seed)+8),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.WithContact(contactID)
	}
	for _, m := range seed {
		if m.ID == "" {
			m.ID = s.newID()
		}
		s.index[m.ID] = len(s.messages)
		s.messages = append(s.messages, m)
	}
	s.log.Debug("store created", "store", s.id, "seed", len(seed))
	return s
}

// ID identifies this store instance. Transitions carry it so that a store
// never applies transitions scheduled by a predecessor.
func (s *Store) ID() string { return s.id }

// ContactID returns the contact whose conversation this store holds.
func (s *Store) ContactID() string { return s.contactID }

// Len returns the number of messages.
func (s *Store) Len() int { return len(s.messages) }

// Messages returns a copy of the messages in insertion order.
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Message looks up a message by id.
func (s *Store) Message(id string) (Message, bool) {
	i, ok := s.index[id]
	if !ok {
		return Message{}, false
	}
	return s.messages[i], true
}

// Last returns the most recent message.
func (s *Store) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Discarded reports whether Discard has been called.
func (s *Store) Discarded() bool { return s.discarded }

// Submit appends a new outbound message with status Sending and returns the
// two transitions that move it to Sent and then Delivered. Whitespace-only
// text is ignored: ok is false and nothing changes.
func (s *Store) Submit(text string) (msg Message, transitions []Transition, ok bool) {
	if s.discarded {
		s.log.Debug("submit on discarded store ignored", "store", s.id)
		return Message{}, nil, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, nil, false
	}

	msg = Message{
		ID:        s.newID(),
		Text:      text,
		Timestamp: s.now(),
		Direction: Outbound,
		Status:    Sending,
	}
	idx := len(s.messages)
	s.index[msg.ID] = idx
	s.messages = append(s.messages, msg)
	s.log.Debug("message submitted", "store", s.id, "message", msg.ID)
	s.emit(Event{Kind: EventAppended, Message: msg, Index: idx})

	transitions = []Transition{
		{StoreID: s.id, MessageID: msg.ID, To: Sent, Delay: SentDelay},
		{StoreID: s.id, MessageID: msg.ID, To: Delivered, Delay: DeliveredDelay},
	}
	return msg, transitions, true
}

// Apply performs a due transition. It returns false without side effects when
// the store is discarded, the transition belongs to another store, the message
// is unknown, or the target status is not later than the current one.
func (s *Store) Apply(t Transition) bool {
	if s.discarded {
		s.log.Debug("transition dropped: store discarded", "store", s.id, "message", t.MessageID)
		return false
	}
	if t.StoreID != s.id {
		s.log.Debug("transition dropped: foreign store", "store", s.id, "from", t.StoreID)
		return false
	}
	i, ok := s.index[t.MessageID]
	if !ok {
		return false
	}
	m := &s.messages[i]
	if !m.Status.Before(t.To) {
		return false
	}
	m.Status = t.To
	s.log.Debug("status changed", "message", m.ID, "to", t.To.String())
	s.emit(Event{Kind: EventStatusChanged, Message: *m, Index: i})
	return true
}

// Subscribe registers fn to be called synchronously after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Discard retires the store. Transitions still in flight are lost.
func (s *Store) Discard() {
	if s.discarded {
		return
	}
	s.discarded = true
	s.subs = nil
	s.log.Debug("store discarded", "store", s.id, "messages", len(s.messages))
}

// emit walks a copy so observers may unsubscribe while being notified.
func (s *Store) emit(ev Event) {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(ev)
	}
}
