package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chatsync/chatsync/internal/demo/scenarios"
)

func TestListScenarios(t *testing.T) {
	var buf bytes.Buffer
	listScenarios(&buf)

	for _, s := range scenarios.All() {
		if !strings.Contains(buf.String(), s.Name) {
			t.Errorf("list missing %q", s.Name)
		}
	}
}

func TestGetScenario(t *testing.T) {
	origW, origH := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origW, origH }()
	demoWidth, demoHeight = 100, 30

	s, err := getScenario("basic")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Width != 100 || s.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", s.Width, s.Height)
	}
	if scenarios.Basic.Width != 120 {
		t.Error("overriding the size should not change the built-in scenario")
	}

	if _, err := getScenario("nope"); err == nil {
		t.Error("unknown scenario should be an error")
	}
}

func TestRunDemoCast(t *testing.T) {
	origOut := demoOutput
	defer func() { demoOutput = origOut }()
	demoOutput = filepath.Join(t.TempDir(), "basic.cast")

	var buf bytes.Buffer
	demoCastCmd.SetOut(&buf)
	defer demoCastCmd.SetOut(nil)

	if err := runDemoCast(demoCastCmd, []string{"basic"}); err != nil {
		t.Fatalf("runDemoCast() error = %v", err)
	}

	data, err := os.ReadFile(demoOutput)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `{"version":2`) {
		t.Errorf("cast should start with an asciicast v2 header: %.40s", data)
	}
	if !strings.Contains(buf.String(), "Generated") {
		t.Errorf("output = %q", buf.String())
	}
}
