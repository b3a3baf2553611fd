// Package conversation holds the in-memory message list for one open chat and
// drives the simulated delivery lifecycle of outgoing messages.
package conversation

import (
	"fmt"
	"time"
)

// Direction records who authored a message.
type Direction int

const (
	Outbound Direction = iota // authored by the local user
	Inbound                   // authored by the contact
)

func (d Direction) String() string {
	switch d {
	case Outbound:
		return "outbound"
	case Inbound:
		return "inbound"
	default:
		return "unknown"
	}
}

// ParseDirection parses "outbound"/"inbound" ("sent"/"received" are accepted too).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "outbound", "sent", "me":
		return Outbound, nil
	case "inbound", "received", "them":
		return Inbound, nil
	default:
		return Outbound, fmt.Errorf("unknown direction %q", s)
	}
}

// Status is the delivery state of a message. Values are ordered:
// Sending < Sent < Delivered < Read.
type Status int

const (
	Sending Status = iota
	Sent
	Delivered
	Read
)

func (s Status) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Delivered:
		return "delivered"
	case Read:
		return "read"
	default:
		return "unknown"
	}
}

// Before reports whether s comes strictly earlier in the lifecycle than other.
func (s Status) Before(other Status) bool {
	return s < other
}

// ParseStatus parses the lower-case status names produced by String.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "sending":
		return Sending, nil
	case "sent":
		return Sent, nil
	case "delivered":
		return Delivered, nil
	case "read":
		return Read, nil
	default:
		return Sending, fmt.Errorf("unknown status %q", s)
	}
}

// Message is a single chat entry. Text, Timestamp and Direction never change
// after creation; only Status advances.
type Message struct {
	ID        string
	Text      string
	Timestamp time.Time
	Direction Direction
	Status    Status
}

// IsOutbound reports whether the local user wrote the message.
func (m Message) IsOutbound() bool {
	return m.Direction == Outbound
}

// EffectiveStatus is the status used for display. Inbound messages have no
// delivery lifecycle and are treated as settled.
func (m Message) EffectiveStatus() Status {
	if m.Direction == Inbound {
		return Read
	}
	return m.Status
}
