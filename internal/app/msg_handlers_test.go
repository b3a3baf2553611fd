package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/clipboard"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/keys"
	"github.com/chatsync/chatsync/internal/notification"
	"github.com/chatsync/chatsync/internal/ui"
)

func TestCopyLastMessage(t *testing.T) {
	var buf []byte
	clipboard.SetBackend(
		func() error { return nil },
		func() []byte { return buf },
		func(b []byte) { buf = append([]byte(nil), b...) },
	)
	defer clipboard.ResetBackend()

	m, _ := testModel(t, registeredConfig(t))
	openContact(m, 0)
	sendKeys(m, keys.CtrlY)

	if got := string(buf); got != "Nice! What are you working on?" {
		t.Errorf("clipboard = %q", got)
	}
	if flash := m.Footer().Flash(); flash == nil || flash.Type != ui.FlashSuccess {
		t.Errorf("flash = %+v, want success", flash)
	}

	typeText(m, "Testing")
	sendKeys(m, keys.Enter, keys.CtrlY)
	if got := string(buf); got != "Testing" {
		t.Errorf("clipboard = %q, want the newest message", got)
	}
}

func TestCopyLastMessage_Unavailable(t *testing.T) {
	clipboard.SetBackend(
		func() error { return errors.New("no display") },
		func() []byte { return nil },
		func([]byte) {},
	)
	defer clipboard.ResetBackend()

	m, _ := testModel(t, registeredConfig(t))
	openContact(m, 0)
	sendKeys(m, keys.CtrlY)

	flash := m.Footer().Flash()
	if flash == nil || flash.Type != ui.FlashError {
		t.Errorf("flash = %+v, want error", flash)
	}
}

func TestCopyLastMessage_EmptyConversation(t *testing.T) {
	dir, err := directory.New([]directory.Contact{{ID: "q", DisplayName: "Quinn Quiet"}})
	if err != nil {
		t.Fatal(err)
	}
	m := New(registeredConfig(t), dir,
		WithScheduler(NewVirtualScheduler()),
		WithClock(func() time.Time { return testNow }),
	)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	openContact(m, 0)
	sendKeys(m, keys.CtrlY)

	flash := m.Footer().Flash()
	if flash == nil || flash.Type != ui.FlashInfo || flash.Text != "Nothing to copy" {
		t.Errorf("flash = %+v, want info", flash)
	}
}

func TestToast_DesktopNotification(t *testing.T) {
	var got []string
	notification.SetNotifier(func(title, message string, icon any) error {
		got = append(got, title+"|"+message)
		return nil
	})
	defer notification.ResetNotifier()

	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{"disabled", false, 0},
		{"enabled", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			cfg := registeredConfig(t)
			cfg.SetDesktopNotifications(tt.enabled)
			m, _ := testModel(t, cfg)

			_, cmd := m.Update(ui.ToastMsg{Title: "Data Cleared", Description: "Cache and temporary files have been cleared."})
			if !strings.HasPrefix(m.Footer().Flash().Text, "Data Cleared") {
				t.Errorf("flash = %q", m.Footer().Flash().Text)
			}

			// Run everything but the flash timer
			if tt.enabled {
				batch, ok := cmd().(tea.BatchMsg)
				if !ok {
					t.Fatalf("expected a batch, got %T", cmd)
				}
				for _, c := range batch[1:] {
					c()
				}
			}

			if len(got) != tt.want {
				t.Fatalf("notifications = %v, want %d", got, tt.want)
			}
			if tt.want > 0 && !strings.Contains(got[0], "Data Cleared|Cache and temporary files") {
				t.Errorf("notification = %q", got[0])
			}
		})
	}
}
