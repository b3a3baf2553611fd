package directory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	d := Default(testNow)

	if d.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", d.Len())
	}

	want := []struct {
		id, name, phone, preview string
		unread                   int
	}{
		{"1", "Alex Johnson", "(555) 123-4567", "Hey, how are you doing?", 2},
		{"2", "Sarah Williams", "(555) 987-6543", "See you tomorrow!", 0},
		{"3", "Mike Chen", "(555) 456-7890", "Thanks for the help", 0},
		{"4", "Emma Davis", "(555) 321-0987", "Good morning! 😊", 0},
	}
	for i, w := range want {
		c := d.At(i)
		if c.ID != w.id || c.DisplayName != w.name || c.PhoneNumber != w.phone ||
			c.LastMessagePreview != w.preview || c.UnreadCount != w.unread {
			t.Errorf("contact %d = %+v, want %+v", i, c, w)
		}
		if len(c.History) != 4 {
			t.Errorf("contact %s history length = %d, want 4", c.ID, len(c.History))
		}
	}
}

func TestSeedHistory(t *testing.T) {
	h := SeedHistory(testNow)
	if len(h) != 4 {
		t.Fatalf("expected 4 seed messages, got %d", len(h))
	}

	wantDir := []conversation.Direction{conversation.Inbound, conversation.Outbound, conversation.Inbound, conversation.Outbound}
	wantStatus := []conversation.Status{conversation.Read, conversation.Read, conversation.Read, conversation.Delivered}
	wantAgo := []time.Duration{time.Hour, 3500 * time.Second, 3400 * time.Second, 2 * time.Minute}

	for i, m := range h {
		if m.Direction != wantDir[i] {
			t.Errorf("message %d direction = %v, want %v", i, m.Direction, wantDir[i])
		}
		if m.Status != wantStatus[i] {
			t.Errorf("message %d status = %v, want %v", i, m.Status, wantStatus[i])
		}
		if got := testNow.Sub(m.Timestamp); got != wantAgo[i] {
			t.Errorf("message %d age = %v, want %v", i, got, wantAgo[i])
		}
	}
	if h[3].Text != "Nice! What are you working on?" {
		t.Errorf("last seed text = %q", h[3].Text)
	}
}

func TestContactSeed_IsCopy(t *testing.T) {
	c := Default(testNow).At(0)
	seed := c.Seed()
	seed[0].Text = "changed"
	if c.History[0].Text == "changed" {
		t.Error("Seed() should return a copy")
	}
}

func TestGet(t *testing.T) {
	d := Default(testNow)

	c, err := d.Get("3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.DisplayName != "Mike Chen" {
		t.Errorf("Get(3) = %q", c.DisplayName)
	}

	_, err = d.Get("99")
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("Get(99) error = %v, want KindNotFound", err)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		contacts []Contact
	}{
		{"missing id", []Contact{{DisplayName: "A"}}},
		{"missing name", []Contact{{ID: "1"}}},
		{"duplicate id", []Contact{{ID: "1", DisplayName: "A"}, {ID: "1", DisplayName: "B"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.contacts)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, errors.KindConfig) {
				t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
			}
		})
	}
}

func TestSearch(t *testing.T) {
	d := Default(testNow)

	tests := []struct {
		query string
		first string
		count int
	}{
		{"", "Alex Johnson", 4},
		{"sarah", "Sarah Williams", 1},
		{"mchen", "Mike Chen", 1},
		{"456-7890", "Mike Chen", 1},
		{"zzz", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := d.Search(tt.query)
			if tt.count == 0 {
				if len(got) != 0 {
					t.Errorf("Search(%q) returned %d contacts, want none", tt.query, len(got))
				}
				return
			}
			if len(got) < 1 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			if got[0].DisplayName != tt.first {
				t.Errorf("Search(%q)[0] = %q, want %q", tt.query, got[0].DisplayName, tt.first)
			}
			if tt.query == "" && len(got) != tt.count {
				t.Errorf("Search(\"\") returned %d, want %d", len(got), tt.count)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alex Johnson", "AJ"},
		{"Sarah Williams", "SW"},
		{"mike chen", "MC"},
		{"Cher", "C"},
		{"Mary Anne Smith", "MA"},
		{"", ""},
		{"  Émile   Zola ", "ÉZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.name); got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "now"},
		{2 * time.Minute, "2m ago"},
		{time.Hour, "1h ago"},
		{3 * time.Hour, "3h ago"},
		{24 * time.Hour, "1d ago"},
		{15 * 24 * time.Hour, "2w ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := RelativeTime(testNow.Add(-tt.ago), testNow); got != tt.want {
				t.Errorf("RelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}

	if got := RelativeTime(time.Time{}, testNow); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}

const sampleYAML = `
contacts:
  - id: "10"
    name: Priya Patel
    phone: (555) 222-3333
    last_message: Lunch?
    last_message_ago: 5m
    unread: 1
    history:
      - text: Lunch?
        direction: inbound
        ago: 5m
      - text: Sure
        direction: outbound
        status: delivered
        ago: 4m
  - id: "11"
    name: Tom Nguyen
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleYAML), testNow)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	priya := d.At(0)
	if priya.UnreadCount != 1 || priya.LastMessagePreview != "Lunch?" {
		t.Errorf("priya = %+v", priya)
	}
	if got := testNow.Sub(priya.LastMessageAt); got != 5*time.Minute {
		t.Errorf("last message age = %v, want 5m", got)
	}
	if len(priya.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(priya.History))
	}
	if h := priya.History[1]; h.Direction != conversation.Outbound || h.Status != conversation.Delivered || h.ID != "10-2" {
		t.Errorf("history[1] = %+v", h)
	}
	if h := priya.History[0]; h.Status != conversation.Read {
		t.Errorf("history[0] default status = %v, want read", h.Status)
	}

	tom := d.At(1)
	if len(tom.History) != 4 {
		t.Errorf("contact without history should get seed history, got %d messages", len(tom.History))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "contacts: [unclosed"},
		{"empty", "contacts: []"},
		{"bad duration", "contacts:\n  - id: a\n    name: A\n    last_message_ago: soon\n"},
		{"bad status", "contacts:\n  - id: a\n    name: A\n    history:\n      - text: hi\n        status: seen\n"},
		{"empty history text", "contacts:\n  - id: a\n    name: A\n    history:\n      - direction: inbound\n"},
		{"negative unread", "contacts:\n  - id: a\n    name: A\n    unread: -1\n"},
		{"duplicate", "contacts:\n  - id: a\n    name: A\n  - id: a\n    name: B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), testNow)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.KindConfig) {
				t.Errorf("expected KindConfig, got %v (%v)", errors.GetKind(err), err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path, testNow)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), testNow)
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("missing file error = %v, want KindIO", err)
	}
}
