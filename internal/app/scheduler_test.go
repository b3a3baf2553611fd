package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/conversation"
)

func TestTickScheduler(t *testing.T) {
	ts := []conversation.Transition{
		{StoreID: "s", MessageID: "m", To: conversation.Sent, Delay: time.Millisecond},
		{StoreID: "s", MessageID: "m", To: conversation.Delivered, Delay: 2 * time.Millisecond},
	}

	cmd := TickScheduler{}.Schedule(ts...)
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) != 2 {
		t.Fatalf("expected a batch of 2 ticks, got %T", cmd())
	}

	for i, c := range batch {
		msg, ok := c().(StatusTransitionMsg)
		if !ok {
			t.Fatalf("tick %d returned %T", i, c())
		}
		if msg.Transition != ts[i] {
			t.Errorf("tick %d = %+v, want %+v", i, msg.Transition, ts[i])
		}
	}
}

func TestVirtualScheduler(t *testing.T) {
	v := NewVirtualScheduler()

	if cmd := v.Schedule(
		conversation.Transition{MessageID: "a", To: conversation.Delivered, Delay: conversation.DeliveredDelay},
		conversation.Transition{MessageID: "a", To: conversation.Sent, Delay: conversation.SentDelay},
	); cmd != nil {
		t.Error("virtual scheduling should not return a command")
	}
	if v.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", v.Pending())
	}

	msgs := v.Advance(499 * time.Millisecond)
	if len(msgs) != 0 {
		t.Errorf("nothing should be due before 500ms, got %v", msgs)
	}

	msgs = v.Advance(time.Millisecond)
	if len(msgs) != 1 || msgs[0].(StatusTransitionMsg).Transition.To != conversation.Sent {
		t.Errorf("at 500ms expected the sent transition, got %v", msgs)
	}

	msgs = v.Advance(time.Second)
	if len(msgs) != 1 || msgs[0].(StatusTransitionMsg).Transition.To != conversation.Delivered {
		t.Errorf("expected the delivered transition, got %v", msgs)
	}
	if v.Now() != 1500*time.Millisecond {
		t.Errorf("Now() = %v, want 1.5s", v.Now())
	}
}
