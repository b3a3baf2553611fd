// Package clipboard copies and reads message text through the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/chatsync/chatsync/internal/errors"
	"github.com/chatsync/chatsync/internal/logger"
)

// backend is the subset of golang.design/x/clipboard the package uses.
type backend struct {
	init  func() error
	read  func() []byte
	write func([]byte)
}

func systemBackend() backend {
	return backend{
		init:  clipboard.Init,
		read:  func() []byte { return clipboard.Read(clipboard.FmtText) },
		write: func(b []byte) { clipboard.Write(clipboard.FmtText, b) },
	}
}

var (
	mu          sync.Mutex
	impl        = systemBackend()
	initialized bool
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := impl.init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return errors.ClipboardUnavailable(err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	impl.write([]byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return string(impl.read()), nil
}

// SetBackend swaps the clipboard implementation. Tests use it to avoid
// touching the real system clipboard.
func SetBackend(initFn func() error, read func() []byte, write func([]byte)) {
	mu.Lock()
	defer mu.Unlock()
	impl = backend{init: initFn, read: read, write: write}
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	impl = systemBackend()
	initialized = false
}
