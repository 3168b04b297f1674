// Package standardize rewrites boxed comment headers and build flags in the
// collar's LSL scripts.
package standardize

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/afero"

	"github.com/anne-skydancer/ds-collar-modular/cli"
	"github.com/anne-skydancer/ds-collar-modular/internal/buildflags"
	"github.com/anne-skydancer/ds-collar-modular/internal/fs"
	"github.com/anne-skydancer/ds-collar-modular/internal/logging"
	"github.com/anne-skydancer/ds-collar-modular/internal/parser"
	"github.com/anne-skydancer/ds-collar-modular/internal/source"
	"github.com/anne-skydancer/ds-collar-modular/model"
)

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// App orchestrates the entire application logic.
type App struct {
	cfg              *cli.Config
	fsys             afero.Fs
	log              logging.Logger
	sourceProvider   *source.SourceProvider
	stdout           io.Writer
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance. A nil fsys means the operating system
// filesystem rooted at cfg.Root; a nil log discards diagnostics.
func New(cfg *cli.Config, fsys afero.Fs, log logging.Logger) *App {
	if fsys == nil {
		fsys = fs.NewRootFs(cfg.Root)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		cfg:            cfg,
		fsys:           fsys,
		log:            log,
		sourceProvider: source.New(),
		stdout:         os.Stdout,
	}
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb func(current, total int)) {
	a.progressCallback = cb
}

// Execute executes the main application logic based on parsed flags.
func (a *App) Execute() (model.Summary, error) {
	if a.cfg.Filter {
		return a.filter()
	}
	return a.Run()
}

// Run standardizes every discovered script, writing back only the files
// whose text changed. Modified lists root-relative paths in processing
// order. On error the summary still lists the files already written.
func (a *App) Run() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	summary.DryRun = a.cfg.DryRun
	summary.Modified = []string{}

	files, err := fs.Discover(a.fsys, a.cfg.Extension)
	if err != nil {
		return summary, err
	}
	a.log.Debug("discovered scripts", "count", len(files), "extension", a.cfg.Extension)

	total := len(files)
	a.reportProgress(0, total)
	for i, rel := range files {
		rec, changes, err := a.processFile(rel)
		if err != nil {
			return summary, err
		}
		summary.Scanned++
		if rec.Changed() {
			summary.Modified = append(summary.Modified, rec.Path)
		}
		a.log.Debug("processed", "path", rel, "headers", changes.Headers, "flags", changes.Flags, "changed", rec.Changed())
		a.reportProgress(i+1, total)
	}
	return summary, nil
}

func (a *App) processFile(rel string) (model.FileRecord, Changes, error) {
	text, err := fs.ReadText(a.fsys, rel)
	if err != nil {
		return model.FileRecord{}, Changes{}, err
	}
	updated, changes := Normalize(text, rel)
	rec := model.FileRecord{Path: rel, Original: text, Updated: updated}
	if rec.Changed() && !a.cfg.DryRun {
		if err := fs.WriteText(a.fsys, rel, updated); err != nil {
			return rec, changes, err
		}
	}
	return rec, changes, nil
}

func (a *App) reportProgress(current, total int) {
	if a.progressCallback != nil {
		a.progressCallback(current, total)
	}
}

// filter standardizes text from stdin or the clipboard and prints it.
func (a *App) filter() (model.Summary, error) {
	content, origin, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	out, changes, err := a.filterText(content)
	if err != nil {
		return model.Summary{}, err
	}
	if _, err := io.WriteString(a.stdout, out); err != nil {
		return model.Summary{}, fmt.Errorf("failed to write output: %w", err)
	}
	if out != content {
		if err := a.sourceProvider.PutBack(out, origin); err != nil {
			return model.Summary{}, err
		}
	}
	a.log.Debug("filtered", "headers", changes.Headers, "flags", changes.Flags, "changed", out != content)

	return model.Summary{Message: fmt.Sprintf("Standardized %d header(s).", changes.Headers)}, nil
}

func (a *App) filterText(content string) (string, Changes, error) {
	if !a.cfg.Markdown {
		out, changes := NormalizeBranch(content, a.cfg.Branch)
		return out, changes, nil
	}

	var total Changes
	out, _, err := parser.RewriteCodeBlocks(content, a.cfg.Extension, func(body, hint string) string {
		var rewritten string
		var changes Changes
		if p := hintPath(hint, a.cfg.Extension); a.cfg.Branch == "" && p != "" {
			a.log.Debug("branch from hint", "path", p)
			rewritten, changes = Normalize(body, p)
		} else {
			rewritten, changes = NormalizeBranch(body, a.cfg.Branch)
		}
		total.Headers += changes.Headers
		total.Flags = total.Flags || changes.Flags
		return rewritten
	})
	if err != nil {
		return "", Changes{}, fmt.Errorf("failed to parse markdown: %w", err)
	}
	return out, total, nil
}

// hintPath picks the first script path in hint that lies inside a branch
// folder and returns it relative to the repository root, so
// "Updated `collar/src/dev/leash.lsl`:" gives "src/dev/leash.lsl".
func hintPath(hint, ext string) string {
	for _, field := range strings.Fields(hint) {
		p := filepath.ToSlash(strings.Trim(field, "`*_\"'()[]<>,;:"))
		if !strings.EqualFold(path.Ext(p), ext) {
			continue
		}
		segments := fs.Segments(p)
		for i, seg := range segments {
			if seg != fs.SourceDir {
				continue
			}
			if _, ok := buildflags.Lookup(segments[i:]); ok {
				return path.Join(segments[i:]...)
			}
		}
	}
	return ""
}
