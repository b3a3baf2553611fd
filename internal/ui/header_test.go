package ui

import (
	"strings"
	"testing"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.contactName != "" {
		t.Error("Expected empty contact name initially")
	}
}

func TestHeader_View(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)

	view := stripANSI(header.View())
	if !strings.HasPrefix(view, " chatsync") {
		t.Errorf("header should start with the title, got %q", view)
	}
	if got := len([]rune(view)); got != 60 {
		t.Errorf("header should fill its width, got %d runes", got)
	}
}

func TestHeader_ContactAndSubtitle(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetContactName("Alex Johnson")
	header.SetSubtitle("(555) 123-4567")

	view := stripANSI(header.View())
	if !strings.Contains(view, "Alex Johnson") {
		t.Errorf("header should show the contact name, got %q", view)
	}
	if !strings.Contains(view, "((555) 123-4567)") {
		t.Errorf("header should show the subtitle in parentheses, got %q", view)
	}
	if !strings.HasSuffix(view, " ") {
		t.Error("right-hand text should keep a trailing space")
	}
}

func TestHeader_NarrowWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(5)
	header.SetContactName("Sarah Williams")

	view := stripANSI(header.View())
	if !strings.Contains(view, "Sarah Williams") {
		t.Error("content should not be dropped when the header is narrower than its text")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 124, 58, 237},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"bad", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
