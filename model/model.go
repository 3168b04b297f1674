// Package model holds the values passed between the run loop and its callers.
package model

// FileRecord is one file while it is being processed. Path is relative to the
// repository root and slash separated.
type FileRecord struct {
	Path     string
	Original string
	Updated  string
}

// Changed reports whether the transforms altered the file.
func (r FileRecord) Changed() bool {
	return r.Original != r.Updated
}

// Summary holds the results of a run for display.
type Summary struct {
	// Modified lists the changed files in processing order.
	Modified []string
	Scanned  int
	DryRun   bool
	Message  string
}
