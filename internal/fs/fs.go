// Package fs finds scripts under the source tree and reads and writes them.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/spf13/afero"
)

// SourceDir is the directory under the repository root that holds every
// branch folder.
const SourceDir = "src"

// DiscoveryError reports that the source tree could not be listed.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("cannot discover files under %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ReadError reports a file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a file that could not be written back.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FindRepoRoot returns the work tree root of the git repository containing
// dir, or an error when dir is not inside one.
func FindRepoRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

// DefaultRoot is the repository root when inside a git work tree, otherwise
// the current working directory.
func DefaultRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current working directory: %w", err)
	}
	if root, err := FindRepoRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// NewRootFs returns a filesystem whose paths are relative to root.
func NewRootFs(root string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}

// Discover lists every file with extension ext under SourceDir, recursively.
// Paths are slash separated, relative to the root of fsys, unique and sorted.
func Discover(fsys afero.Fs, ext string) ([]string, error) {
	info, err := fsys.Stat(SourceDir)
	if err != nil {
		return nil, &DiscoveryError{Root: SourceDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: SourceDir, Err: fmt.Errorf("not a directory")}
	}

	pattern := path.Join(SourceDir, "**", "*"+ext)
	matches, err := doublestar.Glob(afero.NewIOFS(fsys), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &DiscoveryError{Root: SourceDir, Err: fmt.Errorf("invalid glob pattern %q: %w", pattern, err)}
	}

	seen := make(map[string]struct{}, len(matches))
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// Segments splits a slash separated relative path into its components.
func Segments(rel string) []string {
	return strings.Split(path.Clean(filepath.ToSlash(rel)), "/")
}

// ErrInvalidUTF8 is wrapped by a ReadError for a file that is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ReadText reads the whole file at name as UTF-8 text.
func ReadText(fsys afero.Fs, name string) (string, error) {
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return "", &ReadError{Path: name, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: name, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// WriteText replaces the content of name, keeping its permission bits.
func WriteText(fsys afero.Fs, name, text string) error {
	perm := os.FileMode(0644)
	if info, err := fsys.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}
	if err := afero.WriteFile(fsys, name, []byte(text), perm); err != nil {
		return &WriteError{Path: name, Err: err}
	}
	return nil
}

// Relativize converts root-relative slash paths into paths relative to the
// current working directory, for display. Paths that cannot be made
// relative are returned absolute.
func Relativize(root string, rels []string) []string {
	out := make([]string, len(rels))
	wd, wdErr := os.Getwd()
	for i, rel := range rels {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		out[i] = abs
		if wdErr != nil {
			continue
		}
		if r, err := filepath.Rel(wd, abs); err == nil {
			out[i] = r
		}
	}
	return out
}
