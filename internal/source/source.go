// Package source reads filter input from stdin or the clipboard.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/anne-skydancer/ds-collar-modular/internal/ui"
)

// Origin tells where the content came from.
type Origin int

const (
	OriginStdin Origin = iota
	OriginClipboard
)

// SourceProvider determines and retrieves the source content.
type SourceProvider struct {
	stdin    io.Reader
	isPiped  func() bool
	readClip func() (string, error)
	saveClip func(string) error
}

// New creates a new SourceProvider reading from the process stdin or the
// system clipboard.
func New() *SourceProvider {
	sp := FromReader(os.Stdin)
	sp.isPiped = func() bool {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) == 0
	}
	return sp
}

// FromReader creates a SourceProvider that always reads r, as if piped.
func FromReader(r io.Reader) *SourceProvider {
	return &SourceProvider{
		stdin:    r,
		isPiped:  func() bool { return true },
		readClip: clipboard.ReadAll,
		saveClip: clipboard.WriteAll,
	}
}

// GetContent retrieves content from stdin (if piped) or the clipboard.
func (sp *SourceProvider) GetContent() (string, Origin, error) {
	if sp.isPiped() {
		ui.Header("--- Reading from stdin ---")
		content, err := io.ReadAll(sp.stdin)
		if err != nil {
			return "", OriginStdin, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), OriginStdin, nil
	}

	ui.Header("--- Reading from clipboard ---")
	content, err := sp.readClip()
	if err != nil {
		return "", OriginClipboard, fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		ui.Warning("Clipboard is empty. Nothing to process.")
		return "", OriginClipboard, nil
	}
	return content, OriginClipboard, nil
}

// PutBack copies content to the clipboard when it was read from there.
func (sp *SourceProvider) PutBack(content string, origin Origin) error {
	if origin != OriginClipboard {
		return nil
	}
	if err := sp.saveClip(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
