// Package nvim asks a running Neovim to reload files rewritten on disk.
package nvim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neovim/go-client/nvim"
)

// addressEnvVars are checked in order for the socket of the Neovim instance
// hosting this process.
var addressEnvVars = []string{"NVIM", "NVIM_LISTEN_ADDRESS"}

// Manager handles the connection and interaction with a Neovim instance.
type Manager struct {
	nvim *nvim.Nvim
}

// HostAddress returns the socket of the Neovim instance this process runs
// inside, or "" when there is none.
func HostAddress() string {
	for _, name := range addressEnvVars {
		if addr := os.Getenv(name); addr != "" {
			return addr
		}
	}
	return ""
}

// Dial connects to the Neovim instance listening on addr. Unlike a temporary
// headless instance, the caller's editor is never started or stopped here.
func Dial(addr string) (*Manager, error) {
	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nvim at %s: %w", addr, err)
	}
	return &Manager{nvim: v}, nil
}

// Close disconnects from Neovim.
func (m *Manager) Close() {
	if m.nvim != nil {
		m.nvim.Close()
	}
}

// ReloadBuffers makes Neovim re-read every buffer showing one of files, so
// open editors pick up the rewritten text.
func (m *Manager) ReloadBuffers(files []string) error {
	if len(files) == 0 {
		return nil
	}
	b := m.nvim.NewBatch()
	for _, f := range files {
		absPath, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		b.Command(fmt.Sprintf("silent! checktime %s", fnameescape(absPath)))
	}
	if err := b.Execute(); err != nil {
		return fmt.Errorf("failed to reload buffers: %w", err)
	}
	return nil
}

// fnameescape escapes the characters Ex commands treat specially in a file
// name argument.
func fnameescape(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case ' ', '\t', '\\', '%', '#', '|', '"', '*', '?', '[', '{', '$', '`':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
