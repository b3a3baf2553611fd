package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/chatsync/chatsync/internal/app"
	"github.com/chatsync/chatsync/internal/config"
	"github.com/chatsync/chatsync/internal/directory"
	"github.com/chatsync/chatsync/internal/logger"
	"github.com/chatsync/chatsync/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// CmdTimeout bounds how long the executor waits on a command returned by
	// the model. Timers outlive it and are ignored (default: 20ms)
	CmdTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		CmdTimeout:       20 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config    ExecutorConfig
	model     *app.Model
	scheduler *app.VirtualScheduler
	start     time.Time
	frames    []Frame
	width     int
	height    int

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	logger.WithComponent("demo").Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup builds the model for the scenario on a virtual clock.
func (e *Executor) setup(scenario *Scenario) error {
	e.start = time.Now().Truncate(time.Minute)
	e.scheduler = app.NewVirtualScheduler()
	e.frames = []Frame{}
	e.width, e.height = scenario.Width, scenario.Height

	dir := directory.Default(e.start)
	if scenario.Setup.ContactsFile != "" {
		loaded, err := directory.LoadFile(scenario.Setup.ContactsFile, e.start)
		if err != nil {
			return err
		}
		dir = loaded
	}

	// Never saved: a pre-registered demo has nothing to persist
	cfg := &config.Config{
		Phone: scenario.Setup.Phone,
		Theme: scenario.Setup.Theme,
	}

	e.model = app.New(cfg, dir,
		app.WithScheduler(e.scheduler),
		app.WithClock(e.now),
		app.WithVersion("demo"),
	)
	e.model.Update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	return nil
}

// now is the virtual wall clock: the start time plus elapsed virtual time.
func (e *Executor) now() time.Time {
	return e.start.Add(e.scheduler.Now())
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.advance(step.Duration)
		e.captureFrame(index, step.Duration)

	case StepKey:
		if step.Key == "" {
			return fmt.Errorf("key step without a key")
		}
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// advance moves virtual time and delivers the status transitions that fall due.
func (e *Executor) advance(d time.Duration) {
	for _, msg := range e.scheduler.Advance(d) {
		e.update(msg)
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.clip(e.model.RenderToString())

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// clip paints content onto a screen buffer the size of the terminal, so
// every frame is exactly width x height cells regardless of what the view
// rendered.
func (e *Executor) clip(content string) string {
	if e.width <= 0 || e.height <= 0 {
		return content
	}
	area := uv.Rect(0, 0, e.width, e.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(content).Draw(scr, area)
	return scr.Render()
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

func (e *Executor) update(msg tea.Msg) {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.resolve(cmd)
}

// resolve runs cmd and feeds back toasts, which is all a demo needs from
// commands. Timers and cursor blinks are abandoned after CmdTimeout.
func (e *Executor) resolve(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(e.config.CmdTimeout):
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			e.resolve(c)
		}
	case ui.ToastMsg:
		e.update(msg)
	}
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space", " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	default:
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
