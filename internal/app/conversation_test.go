package app

import (
	"testing"
	"time"

	"github.com/chatsync/chatsync/internal/conversation"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/keys"
)

func TestSend_SeedScenario(t *testing.T) {
	d := directory.Default(testNow)

	for i := range d.Len() {
		contact := d.At(i)
		t.Run(contact.DisplayName, func(t *testing.T) {
			m, sched := testModel(t, registeredConfig(t))
			openContact(m, i)

			store := m.Store()
			if store == nil || store.ContactID() != contact.ID {
				t.Fatalf("expected an open store for %s", contact.ID)
			}
			if store.Len() != 4 {
				t.Fatalf("seeded conversation has %d messages, want 4", store.Len())
			}

			typeText(m, "Testing")
			sendKeys(m, keys.Enter)

			if store.Len() != 5 {
				t.Fatalf("after submit Len() = %d, want 5", store.Len())
			}
			last, _ := store.Last()
			if last.Text != "Testing" || last.Direction != conversation.Outbound || last.Status != conversation.Sending {
				t.Fatalf("last message = %+v, want outbound sending Testing", last)
			}
			if !last.Timestamp.Equal(testNow) {
				t.Errorf("timestamp = %v, want %v", last.Timestamp, testNow)
			}
			if m.chat.GetInput() != "" {
				t.Errorf("composer should be cleared, got %q", m.chat.GetInput())
			}
			if sched.Pending() != 2 {
				t.Fatalf("pending transitions = %d, want 2", sched.Pending())
			}

			advance(m, sched, 499*time.Millisecond)
			if got := mustMessage(t, store, last.ID).Status; got != conversation.Sending {
				t.Errorf("at 499ms status = %s, want sending", got)
			}

			advance(m, sched, time.Millisecond)
			if got := mustMessage(t, store, last.ID).Status; got != conversation.Sent {
				t.Errorf("at 500ms status = %s, want sent", got)
			}

			advance(m, sched, 500*time.Millisecond)
			if got := mustMessage(t, store, last.ID).Status; got != conversation.Delivered {
				t.Errorf("at 1000ms status = %s, want delivered", got)
			}
			if sched.Pending() != 0 {
				t.Errorf("pending transitions = %d, want 0", sched.Pending())
			}

			// The first four messages are untouched
			for j, seed := range contact.History {
				got := store.Messages()[j]
				if got.Text != seed.Text || got.Status != seed.Status {
					t.Errorf("message %d changed: %+v", j, got)
				}
			}
		})
	}
}

func TestSend_BlankInputIsIgnored(t *testing.T) {
	m, sched := testModel(t, registeredConfig(t))
	openContact(m, 0)

	sendKeys(m, keys.Space, keys.Space, keys.Enter)

	if m.Store().Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Store().Len())
	}
	if sched.Pending() != 0 {
		t.Errorf("blank submit scheduled %d transitions", sched.Pending())
	}
}

func TestSend_AppendOrder(t *testing.T) {
	m, sched := testModel(t, registeredConfig(t))
	openContact(m, 1)

	for _, text := range []string{"one", "two", "three"} {
		typeText(m, text)
		sendKeys(m, keys.Enter)
		advance(m, sched, 100*time.Millisecond)
	}
	advance(m, sched, time.Second)

	msgs := m.Store().Messages()
	if len(msgs) != 7 {
		t.Fatalf("Len() = %d, want 7", len(msgs))
	}
	for i, want := range []string{"one", "two", "three"} {
		got := msgs[4+i]
		if got.Text != want {
			t.Errorf("message %d = %q, want %q", 4+i, got.Text, want)
		}
		if got.Status != conversation.Delivered {
			t.Errorf("message %q status = %s, want delivered", got.Text, got.Status)
		}
	}
}

func TestSwitchContact_ResetsToSeed(t *testing.T) {
	m, sched := testModel(t, registeredConfig(t))
	d := directory.Default(testNow)

	openContact(m, 0)
	typeText(m, "Testing")
	sendKeys(m, keys.Enter)
	old := m.Store()

	advance(m, sched, 500*time.Millisecond)
	sent, _ := old.Last()
	if sent.Status != conversation.Sent {
		t.Fatalf("status before switch = %s, want sent", sent.Status)
	}

	openContact(m, 1)
	fresh := m.Store()

	if fresh == old {
		t.Fatal("switching contacts should create a new store")
	}
	if !old.Discarded() {
		t.Error("previous store should be discarded")
	}
	if fresh.ContactID() != d.At(1).ID {
		t.Errorf("store contact = %s, want %s", fresh.ContactID(), d.At(1).ID)
	}
	if fresh.Len() != len(d.At(1).History) {
		t.Errorf("new store has %d messages, want the %d seed messages", fresh.Len(), len(d.At(1).History))
	}
	for _, msg := range fresh.Messages() {
		if msg.Text == "Testing" {
			t.Error("message from the previous conversation leaked")
		}
	}

	// The delivered transition of the old store arrives after the switch
	advance(m, sched, time.Second)

	if got, _ := old.Last(); got.Status != conversation.Sent {
		t.Errorf("discarded store advanced to %s; in-flight timers should be lost", got.Status)
	}
	for i, msg := range fresh.Messages() {
		if msg.Status != d.At(1).History[i].Status {
			t.Errorf("new store message %d status changed to %s", i, msg.Status)
		}
	}
}

func TestSwitchContact_BackToFirstStartsFromSeed(t *testing.T) {
	m, sched := testModel(t, registeredConfig(t))

	openContact(m, 0)
	typeText(m, "Testing")
	sendKeys(m, keys.Enter)
	advance(m, sched, time.Second)

	openContact(m, 2)
	openContact(m, 0)

	if got := m.Store().Len(); got != 4 {
		t.Errorf("reopened conversation has %d messages, want 4", got)
	}
}

func TestReselectSameContact_KeepsStore(t *testing.T) {
	m, _ := testModel(t, registeredConfig(t))

	openContact(m, 0)
	typeText(m, "draft")
	store := m.Store()
	sendKeys(m, keys.Enter)

	openContact(m, 0)
	if m.Store() != store {
		t.Error("re-selecting the open contact should keep its store")
	}
	if store.Discarded() {
		t.Error("store should not be discarded")
	}
	if store.Len() != 5 {
		t.Errorf("Len() = %d, want 5", store.Len())
	}
}

func TestPanelRoundTrip_RestartsConversation(t *testing.T) {
	tests := []struct {
		name  string
		panel string
		view  ActiveView
	}{
		{"profile", "p", ViewProfile},
		{"settings", "s", ViewSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sched := testModel(t, registeredConfig(t))

			openContact(m, 0)
			typeText(m, "Testing")
			sendKeys(m, keys.Enter)
			old := m.Store()

			sendKeys(m, keys.Tab, tt.panel)
			if m.CurrentView() != tt.view {
				t.Fatalf("view = %s, want %s", m.CurrentView(), tt.view)
			}
			if !old.Discarded() || m.Store() != nil {
				t.Error("the conversation store should be retired while a panel is open")
			}

			advance(m, sched, time.Second)
			if got, _ := old.Last(); got.Status != conversation.Sending {
				t.Errorf("retired store advanced to %s", got.Status)
			}

			sendKeys(m, keys.Escape)
			if m.CurrentView() != ViewDirectory {
				t.Fatalf("view = %s, want Directory", m.CurrentView())
			}
			if c := m.SelectedContact(); c == nil || c.DisplayName != "Alex Johnson" {
				t.Fatalf("selected = %+v, want Alex kept", c)
			}

			fresh := m.Store()
			if fresh == nil || fresh.ID() == old.ID() {
				t.Fatal("returning should mount a new store")
			}
			if fresh.Len() != 4 {
				t.Errorf("Len() = %d, want the 4 seed messages", fresh.Len())
			}
			if last, _ := fresh.Last(); last.Text == "Testing" {
				t.Error("message sent before the panel visit leaked")
			}

			sendKeys(m, keys.Tab)
			if m.CurrentView() != ViewConversation {
				t.Errorf("tab should focus the remounted conversation, view = %s", m.CurrentView())
			}
		})
	}
}

func TestEscape_ClosesConversation(t *testing.T) {
	m, sched := testModel(t, registeredConfig(t))

	openContact(m, 0)
	typeText(m, "Testing")
	sendKeys(m, keys.Enter)
	store := m.Store()

	sendKeys(m, keys.Escape)

	if m.CurrentView() != ViewDirectory {
		t.Errorf("view = %s, want Directory", m.CurrentView())
	}
	if m.SelectedContact() != nil || m.Store() != nil {
		t.Error("selection and store should be cleared")
	}
	if !store.Discarded() {
		t.Error("store should be discarded")
	}

	// Late transitions are dropped without a panic
	advance(m, sched, time.Second)
	if got, _ := store.Last(); got.Status != conversation.Sending {
		t.Errorf("closed store advanced to %s", got.Status)
	}
}

func TestStatusTransition_WithoutStore(t *testing.T) {
	m, _ := testModel(t, registeredConfig(t))
	m.Update(StatusTransitionMsg{Transition: conversation.Transition{StoreID: "gone", MessageID: "x", To: conversation.Sent}})
	if m.Store() != nil {
		t.Error("stray transition should not open anything")
	}
}

func mustMessage(t *testing.T, s *conversation.Store, id string) conversation.Message {
	t.Helper()
	msg, ok := s.Message(id)
	if !ok {
		t.Fatalf("message %s not found", id)
	}
	return msg
}
