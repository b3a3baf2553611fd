package ui

import (
	"strings"
	"testing"

	"github.com/chatsync/chatsync/internal/account"
	"github.com/chatsync/chatsync/internal/keys"
)

func newTestProfile() *Profile {
	p := NewProfile(account.DefaultProfile("(555) 123-4567"))
	p.SetSize(80, 30)
	return p
}

func TestProfile_ViewMode(t *testing.T) {
	p := newTestProfile()

	if p.IsEditing() {
		t.Fatal("profile should start in view mode")
	}
	view := stripANSI(p.View())
	for _, want := range []string{"Profile", "Your Name", "(555) 123-4567", "Hey there!", "not set"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestProfile_EditToggle(t *testing.T) {
	p := newTestProfile()

	p.Update(keyPress("e"))
	if !p.IsEditing() {
		t.Fatal("e should open the edit form")
	}

	p.Update(keyPress(keys.Escape))
	if p.IsEditing() {
		t.Error("escape should cancel editing")
	}
	if p.Profile().Name != "Your Name" {
		t.Error("cancel without typing should not change the profile")
	}
}

func TestProfile_EditsApplyLive(t *testing.T) {
	p := newTestProfile()
	p.Update(keyPress("e"))

	for _, k := range typeKeys(" Here") {
		p.Update(k)
	}
	if got := p.Profile().Name; got != "Your Name Here" {
		t.Errorf("name while editing = %q, want the typed value", got)
	}

	_, cmd := p.Update(keyPress(keys.Escape))
	if cmd != nil {
		t.Error("cancel should not raise a toast")
	}
	if p.IsEditing() {
		t.Fatal("escape should leave edit mode")
	}
	if got := p.Profile().Name; got != "Your Name Here" {
		t.Errorf("name after cancel = %q, edits should be kept", got)
	}
	if !strings.Contains(stripANSI(p.View()), "Your Name Here") {
		t.Error("view mode should show the edited name")
	}
}

func TestProfile_SaveRaisesToast(t *testing.T) {
	p := newTestProfile()
	p.Update(keyPress("e"))

	// The name field is focused first; append to it
	for _, k := range typeKeys(" Here") {
		p.Update(k)
	}

	_, cmd := p.Update(keyPress(keys.CtrlS))
	if cmd == nil {
		t.Fatal("save should return a toast command")
	}
	msg, ok := cmd().(ToastMsg)
	if !ok {
		t.Fatalf("expected ToastMsg, got %T", cmd())
	}
	if msg.Title != "Profile Updated" || msg.Description != "Your profile has been saved successfully." {
		t.Errorf("unexpected toast %+v", msg)
	}
	if p.IsEditing() {
		t.Error("save should close the form")
	}
	if p.Profile().Name != "Your Name Here" {
		t.Errorf("saved name = %q, want %q", p.Profile().Name, "Your Name Here")
	}
}

func TestProfile_SaveWhenNotEditing(t *testing.T) {
	p := newTestProfile()
	if cmd := p.Save(); cmd != nil {
		t.Error("Save outside edit mode should be a no-op")
	}
}

func TestProfile_SaveKeepsNameWhenBlank(t *testing.T) {
	p := newTestProfile()
	p.StartEdit()
	p.profile.Name = "   "
	p.profile.Phone = "5559998888"

	p.Save()
	if p.Profile().Name != "Your Name" {
		t.Errorf("blank name should keep the previous one, got %q", p.Profile().Name)
	}
	if p.Profile().Phone != "(555) 999-8888" {
		t.Errorf("phone should be formatted, got %q", p.Profile().Phone)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := validateEmail(""); err != nil {
		t.Error("empty email is allowed")
	}
	if err := validateEmail("you@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := validateEmail("nope"); err == nil {
		t.Error("invalid email accepted")
	}
}
