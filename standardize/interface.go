package standardize

import (
	"path"
	"strings"

	"github.com/anne-skydancer/ds-collar-modular/cli"
	"github.com/anne-skydancer/ds-collar-modular/internal/buildflags"
	"github.com/anne-skydancer/ds-collar-modular/internal/fs"
	"github.com/anne-skydancer/ds-collar-modular/internal/header"
)

// Changes describes what Normalize did to a text.
type Changes struct {
	// Headers is the number of boxed headers rewritten.
	Headers int
	// Flags is true when DEBUG/PRODUCTION declarations were rewritten or
	// inserted.
	Flags bool
}

// Normalize applies header and flag standardization to the text of the
// script at relPath, a slash separated path relative to the repository root.
// Flags are only touched for scripts inside a known branch folder.
func Normalize(text, relPath string) (string, Changes) {
	var c Changes
	out, n := header.Normalize(text)
	c.Headers = n

	if flags, ok := buildflags.Lookup(fs.Segments(relPath)); ok {
		flagged := buildflags.Apply(out, flags)
		c.Flags = flagged != out
		out = flagged
	}
	return out, c
}

// NormalizeBranch is Normalize for text that is not a file in the tree. An
// empty branch leaves the flags alone.
func NormalizeBranch(text, branch string) (string, Changes) {
	if branch == "" {
		out, n := header.Normalize(text)
		return out, Changes{Headers: n}
	}
	return Normalize(text, path.Join(fs.SourceDir, branch, "input"))
}

// Config for using standardize as a library.
type Config struct {
	// Report the files that would change without writing them.
	DryRun bool
	// Script extension, ".lsl" when empty.
	Extension string
}

// Apply standardizes every script under root/src and returns the
// root-relative paths of the files it changed.
func Apply(root string, config Config) ([]string, error) {
	ext := config.Extension
	if ext == "" {
		ext = cli.DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	app := New(&cli.Config{Root: root, Extension: ext, DryRun: config.DryRun}, nil, nil)
	summary, err := app.Run()
	return summary.Modified, err
}
