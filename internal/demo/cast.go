package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is emitted after the delay that precedes it; annotations become markers.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   "chatsync",
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := writeJSONLine(w, header); err != nil {
		return err
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		ts := elapsed.Seconds()
		// Frames render with bare newlines; terminals need CRLF
		content := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := writeJSONLine(w, []any{ts, "o", content}); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			if err := writeJSONLine(w, []any{ts, "m", f.Annotation}); err != nil {
				return fmt.Errorf("frame %d marker: %w", i, err)
			}
		}
	}
	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
