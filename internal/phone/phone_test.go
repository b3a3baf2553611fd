package phone

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"5", "5"},
		{"55", "55"},
		{"555", "(555) "},
		{"5551", "(555) 1"},
		{"55512", "(555) 12"},
		{"555123", "(555) 123-"},
		{"5551234", "(555) 123-4"},
		{"5551234567", "(555) 123-4567"},
		{"55512345678", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"555-abc-123", "(555) 123-"},
		{"+1 555 123", "(155) 512-3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Format(tt.raw); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{"5", "555", "55512", "555123", "5551234567"}
	for _, in := range inputs {
		once := Format(in)
		if twice := Format(once); twice != once {
			t.Errorf("Format(Format(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"(555) 123-4567", true},
		{"(555) 123-456", false},
		{"", false},
		{Format("5551234567"), true},
	}

	for _, tt := range tests {
		if got := IsComplete(tt.in); got != tt.want {
			t.Errorf("IsComplete(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("(555) 123-4567"); got != "5551234567" {
		t.Errorf("Digits = %q", got)
	}
	if got := Digits("٣٤٥"); got != "" {
		t.Errorf("non-ASCII digits should be dropped, got %q", got)
	}
}
