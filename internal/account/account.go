// Package account holds the local, unpersisted state behind the profile and
// settings panels, and the toast text each action produces.
package account

import (
	"strings"
	"unicode"
)

// Toast is a transient confirmation shown after a panel action.
type Toast struct {
	Title       string
	Description string
}

// Profile is the user's editable profile.
type Profile struct {
	Name  string
	Email string
	Phone string
	Bio   string
}

// DefaultProfile returns the starting profile for a newly registered phone.
func DefaultProfile(phone string) Profile {
	return Profile{
		Name:  "Your Name",
		Phone: phone,
		Bio:   "Hey there! I'm using ChatApp.",
	}
}

// SavedToast is shown when the profile is saved.
func (Profile) SavedToast() Toast {
	return Toast{Title: "Profile Updated", Description: "Your profile has been saved successfully."}
}

// SettingKey names a boolean preference.
type SettingKey string

const (
	DarkMode      SettingKey = "darkMode"
	Notifications SettingKey = "notifications"
	SoundEnabled  SettingKey = "soundEnabled"
	ReadReceipts  SettingKey = "readReceipts"
	OnlineStatus  SettingKey = "onlineStatus"
	AutoDownload  SettingKey = "autoDownload"
	DataUsage     SettingKey = "dataUsage"
)

// Words splits the camelCase key into lower-case words: "darkMode" is "dark mode".
func (k SettingKey) Words() string {
	var b strings.Builder
	for i, r := range string(k) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Settings is the set of boolean preferences. Nothing outside the settings
// panel reads them.
type Settings struct {
	values map[SettingKey]bool
}

// DefaultSettings returns the starting preferences.
func DefaultSettings() *Settings {
	return &Settings{values: map[SettingKey]bool{
		DarkMode:      false,
		Notifications: true,
		SoundEnabled:  true,
		ReadReceipts:  true,
		OnlineStatus:  true,
		AutoDownload:  false,
		DataUsage:     true,
	}}
}

// Get returns the current value of key.
func (s *Settings) Get(key SettingKey) bool {
	return s.values[key]
}

// Toggle flips key and returns the toast describing the new value.
func (s *Settings) Toggle(key SettingKey) Toast {
	v := !s.values[key]
	s.values[key] = v
	state := "disabled"
	if v {
		state = "enabled"
	}
	return Toast{
		Title:       "Setting Updated",
		Description: key.Words() + " has been " + state + ".",
	}
}

// ClearCacheToast is shown after "Clear Cache". No data is actually removed.
func ClearCacheToast() Toast {
	return Toast{Title: "Data Cleared", Description: "Cache and temporary files have been cleared."}
}

// LogOutToast is shown after "Log Out". The session is not actually ended.
func LogOutToast() Toast {
	return Toast{Title: "Logged Out", Description: "You have been logged out successfully."}
}
