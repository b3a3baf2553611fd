package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatsync/chatsync/internal/conversation"
)

// StatusTransitionMsg delivers a due status transition back to the shell.
type StatusTransitionMsg struct {
	Transition conversation.Transition
}

// Scheduler arranges for each transition to come back as a
// StatusTransitionMsg once its delay has elapsed.
type Scheduler interface {
	Schedule(ts ...conversation.Transition) tea.Cmd
}

// TickScheduler uses Bubble Tea timers. It is the production scheduler.
type TickScheduler struct{}

// Schedule returns one tea.Tick per transition.
func (TickScheduler) Schedule(ts ...conversation.Transition) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(ts))
	for _, t := range ts {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return StatusTransitionMsg{Transition: t}
		}))
	}
	return tea.Batch(cmds...)
}

// VirtualScheduler queues transitions on a virtual timeline. Nothing fires
// until Advance is called, which makes tests and demos deterministic.
type VirtualScheduler struct {
	timeline *conversation.Timeline
}

// NewVirtualScheduler creates a scheduler at virtual time zero.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{timeline: conversation.NewTimeline()}
}

// Schedule queues the transitions and returns no command.
func (v *VirtualScheduler) Schedule(ts ...conversation.Transition) tea.Cmd {
	v.timeline.Schedule(ts...)
	return nil
}

// Advance moves virtual time forward by d and returns the messages that
// became due, in firing order.
func (v *VirtualScheduler) Advance(d time.Duration) []tea.Msg {
	due := v.timeline.Advance(d)
	msgs := make([]tea.Msg, 0, len(due))
	for _, t := range due {
		msgs = append(msgs, StatusTransitionMsg{Transition: t})
	}
	return msgs
}

// Pending returns the number of queued transitions.
func (v *VirtualScheduler) Pending() int {
	return v.timeline.Pending()
}

// Now returns the elapsed virtual time.
func (v *VirtualScheduler) Now() time.Duration {
	return v.timeline.Now()
}
