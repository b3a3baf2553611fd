package ui

import (
	"strings"
	"testing"

	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/keys"
)

func newTestSettings() *Settings {
	s := NewSettings(account.DefaultSettings())
	s.SetSize(80, 40)
	return s
}

func TestSettings_ToggleRaisesToast(t *testing.T) {
	s := newTestSettings()

	// First row is dark mode, off by default
	_, cmd := s.Update(keyPress(keys.Space))
	if cmd == nil {
		t.Fatal("toggle should return a toast command")
	}
	msg := cmd().(ToastMsg)
	if msg.Title != "Setting Updated" || msg.Description != "dark mode has been enabled." {
		t.Errorf("unexpected toast %+v", msg)
	}
	if !s.Values().Get(account.DarkMode) {
		t.Error("dark mode should be enabled")
	}

	_, cmd = s.Update(keyPress(keys.Enter))
	if got := cmd().(ToastMsg).Description; got != "dark mode has been disabled." {
		t.Errorf("second toggle toast = %q", got)
	}
}

func TestSettings_Navigation(t *testing.T) {
	s := newTestSettings()

	s.Update(keyPress(keys.Up))
	if s.Cursor() != 0 {
		t.Error("cursor should not move above the first row")
	}

	s.Update(keyPress(keys.Down))
	s.Update(keyPress("j"))
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", s.Cursor())
	}

	_, cmd := s.Update(keyPress(keys.Space))
	if got := cmd().(ToastMsg).Description; got != "sound enabled has been disabled." {
		t.Errorf("toast = %q", got)
	}

	s.Update(keyPress("G"))
	if s.Cursor() != len(settingsRows)-1 {
		t.Errorf("cursor = %d, want last row", s.Cursor())
	}
	s.Update(keyPress(keys.Down))
	if s.Cursor() != len(settingsRows)-1 {
		t.Error("cursor should not move past the last row")
	}
}

func TestSettings_Actions(t *testing.T) {
	s := newTestSettings()
	watched := []account.SettingKey{account.DarkMode, account.Notifications, account.DataUsage}
	before := map[account.SettingKey]bool{}
	for _, key := range watched {
		before[key] = s.Values().Get(key)
	}

	s.Update(keyPress("G"))
	_, cmd := s.Update(keyPress(keys.Enter))
	if got := cmd().(ToastMsg); got.Title != "Logged Out" {
		t.Errorf("log out toast = %+v", got)
	}

	s.Update(keyPress("k"))
	_, cmd = s.Update(keyPress(keys.Enter))
	if got := cmd().(ToastMsg); got.Title != "Data Cleared" {
		t.Errorf("clear cache toast = %+v", got)
	}

	for _, key := range watched {
		if s.Values().Get(key) != before[key] {
			t.Errorf("actions should not change %s", key)
		}
	}
}

func TestSettings_View(t *testing.T) {
	s := newTestSettings()

	view := stripANSI(s.View())
	for _, want := range []string{
		"Settings", "Appearance", "Privacy", "Data & Storage", "Account",
		"> Dark Mode", "Push Notifications", "[ Clear Cache ]", "[ Log Out ]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
