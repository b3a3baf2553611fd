// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/logger"
)

// AppName is shown as the notification title prefix.
const AppName = "ChatSync"

var notify = beeep.Notify

// SetNotifier replaces the underlying notify function. Tests use it to avoid
// sending real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default.
	if err := notify(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return errors.E(errors.Op("notification.Send"), errors.KindNotification, err)
	}
	return nil
}

// Toast forwards an in-app toast to the desktop, prefixing the title with
// the application name.
func Toast(title, description string) error {
	return Send(AppName+": "+title, description)
}
