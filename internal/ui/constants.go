// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ContactsWidthRatio is the denominator for the contact list width (1/3 of total width)
	ContactsWidthRatio = 3

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// TextareaHeight is the number of lines for the message composer
	TextareaHeight = 1

	// TextareaBorderHeight is the border size around the composer
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// ChatHeaderHeight is the contact name line plus the presence line
	ChatHeaderHeight = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// ContactRowHeight is the number of lines each contact occupies in the list
	ContactRowHeight = 2

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// BubbleWidthPercent caps a message bubble at this share of the chat width
	BubbleWidthPercent = 70
)

// Text entry limits
const (
	// MessageCharLimit is the character limit for the message composer
	MessageCharLimit = 2000

	// SearchCharLimit is the character limit for the contact search input
	SearchCharLimit = 64

	// FormWidth is the default width of the profile form
	FormWidth = 60
)

// Timing
const (
	// RegistrationDelay is how long the registration gate shows "Connecting..."
	RegistrationDelay = 1500 * time.Millisecond
)
