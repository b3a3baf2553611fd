// Package ui provides the user interface components for the chatsync TUI.
//
// # Overview
//
// The ui package implements the visual components of chatsync using the Bubble Tea
// framework and Lipgloss styling library. Components are plain structs with
// Update and View methods; the app package owns them and routes messages.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   Contacts      │         Chat Panel                │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The Profile and Settings panels replace the whole content area.
// The Registration gate replaces everything but the footer.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title with a gradient background, plus the active
// contact's name.
//
// Footer: Context-aware keyboard shortcuts and transient flash messages.
// Toasts raised by Profile and Settings are shown here.
//
// ContactList: Directory entries with avatar initials, preview, relative time
// and unread badge. Supports fuzzy search with '/'.
//
// Chat: The conversation panel. A viewport renders message bubbles with
// delivery status; a textarea composes new messages.
//
// Registration, Profile, Settings: full-panel forms.
//
// # Focus System
//
//   - FocusContacts: the contact list handles navigation keys
//   - FocusChat: keyboard input goes to the composer
//
// Tab toggles between them once a contact is selected.
package ui
