package directory

import (
	"time"

	"github.com/chatsync/chatsync/internal/conversation"
)

// SeedHistory is the canned conversation every contact opens with unless a
// contacts file supplies its own. Timestamps are relative to now.
func SeedHistory(now time.Time) []conversation.Message {
	return []conversation.Message{
		{
			ID:        "1",
			Text:      "Hey! How are you doing today?",
			Timestamp: now.Add(-3600 * time.Second),
			Direction: conversation.Inbound,
			Status:    conversation.Read,
		},
		{
			ID:        "2",
			Text:      "I'm doing great, thanks for asking! How about you?",
			Timestamp: now.Add(-3500 * time.Second),
			Direction: conversation.Outbound,
			Status:    conversation.Read,
		},
		{
			ID:        "3",
			Text:      "That's awesome to hear! I'm having a productive day at work.",
			Timestamp: now.Add(-3400 * time.Second),
			Direction: conversation.Inbound,
			Status:    conversation.Read,
		},
		{
			ID:        "4",
			Text:      "Nice! What are you working on?",
			Timestamp: now.Add(-2 * time.Minute),
			Direction: conversation.Outbound,
			Status:    conversation.Delivered,
		},
	}
}

// Default returns the built-in demo contacts.
func Default(now time.Time) *Directory {
	history := SeedHistory(now)
	d, err := New([]Contact{
		{
			ID:                 "1",
			DisplayName:        "Alex Johnson",
			PhoneNumber:        "(555) 123-4567",
			LastMessagePreview: "Hey, how are you doing?",
			LastMessageAt:      now.Add(-2 * time.Minute),
			UnreadCount:        2,
			History:            history,
		},
		{
			ID:                 "2",
			DisplayName:        "Sarah Williams",
			PhoneNumber:        "(555) 987-6543",
			LastMessagePreview: "See you tomorrow!",
			LastMessageAt:      now.Add(-time.Hour),
			History:            history,
		},
		{
			ID:                 "3",
			DisplayName:        "Mike Chen",
			PhoneNumber:        "(555) 456-7890",
			LastMessagePreview: "Thanks for the help",
			LastMessageAt:      now.Add(-3 * time.Hour),
			History:            history,
		},
		{
			ID:                 "4",
			DisplayName:        "Emma Davis",
			PhoneNumber:        "(555) 321-0987",
			LastMessagePreview: "Good morning! 😊",
			LastMessageAt:      now.Add(-24 * time.Hour),
			History:            history,
		},
	})
	if err != nil {
		// The built-in list is static; failing here is a programming error.
		panic(err)
	}
	return d
}
