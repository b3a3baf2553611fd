// Package scenarios contains built-in demo scenarios for chatsync.
package scenarios

import (
	"time"

	"github.com/chatsync/chatsync/internal/demo"
)

// Basic walks one message through its whole lifecycle:
// - Opening the first conversation
// - Sending a message
// - Watching it tick from sending to sent to delivered
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Open a conversation and send a message",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Pick a contact"),
		demo.KeyWithDesc("enter", "Open the conversation with Alex"),
		demo.Wait(600 * time.Millisecond),

		demo.TypeWithDesc("Testing", "Compose a message"),
		demo.KeyWithDesc("enter", "Send it"),
		demo.Annotate("Sending..."),
		demo.Capture(),

		// Status ticks
		demo.Wait(500 * time.Millisecond),
		demo.Wait(500 * time.Millisecond),

		demo.Wait(time.Second),
	},
}

// Tour visits every panel: the profile editor and the settings list.
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Edit the profile and flip a few settings",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Your profile"),
		demo.KeyWithDesc("p", "Open the profile"),
		demo.Wait(600 * time.Millisecond),
		demo.KeyWithDesc("e", "Start editing"),
		demo.Wait(600 * time.Millisecond),
		demo.KeyWithDesc("ctrl+s", "Save"),
		demo.Wait(time.Second),
		demo.KeyWithDesc("esc", "Back to contacts"),
		demo.Wait(400 * time.Millisecond),

		demo.Annotate("Settings"),
		demo.KeyWithDesc("s", "Open settings"),
		demo.Wait(600 * time.Millisecond),
		demo.KeyWithDesc("space", "Toggle dark mode"),
		demo.Wait(time.Second),
		demo.Key("down"),
		demo.KeyWithDesc("space", "Toggle push notifications"),
		demo.Wait(time.Second),
		demo.KeyWithDesc("esc", "Back to contacts"),
		demo.Wait(800 * time.Millisecond),
	},
}

// Switch leaves a conversation before its message is delivered. The new
// conversation starts fresh and the pending timers never land.
var Switch = &demo.Scenario{
	Name:        "switch",
	Description: "Switch contacts while a message is in flight",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		demo.Key("enter"),
		demo.Wait(400 * time.Millisecond),
		demo.Type("Be right back"),
		demo.Key("enter"),
		demo.Capture(),
		demo.Wait(200 * time.Millisecond),

		demo.Annotate("Switch before delivery"),
		demo.KeyWithDesc("tab", "Focus the contact list"),
		demo.Key("down"),
		demo.KeyWithDesc("enter", "Open Sarah"),
		demo.Wait(time.Second),
		demo.Wait(time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Tour,
		Switch,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
