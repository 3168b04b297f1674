// Package header rewrites boxed comment headers to the single-line form.
package header

import (
	"regexp"
	"strings"
)

const (
	leftOrnament  = "/* -------------------- "
	rightOrnament = " -------------------- */"
)

// matcher is one family of boxed header patterns. Each pattern must expose a
// named "title" group.
type matcher struct {
	re *regexp.Regexp
}

// matchers are tried in order, each against the whole text produced by the
// previous one.
var matchers = []matcher{
	{
		re: regexp.MustCompile(
			`/\*\s*\x{2550}+\s*\n(\s*)(?P<title>[^\n\r]+?)\s*\n\s*\x{2550}+\s*\*/`),
	},
	{
		re: regexp.MustCompile(
			`/\*\s*[-=~*]{5,}\s*\n(\s*)(?P<title>[^\n\r]+?)\s*\n\s*[-=~*]{5,}\s*\*/`),
	},
}

// match is a single boxed header found in a text.
type match struct {
	Start, End int
	Title      string
}

// Canonical returns the single-line header for title.
func Canonical(title string) string {
	return leftOrnament + CollapseTitle(title) + rightOrnament
}

// CollapseTitle trims title and folds every whitespace run, newlines
// included, into one space.
func CollapseTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// Normalize rewrites every boxed header in text to its canonical form and
// reports how many were replaced.
func Normalize(text string) (string, int) {
	total := 0
	for _, m := range matchers {
		var n int
		text, n = m.replace(text)
		total += n
	}
	return text, total
}

// find lists the boxed headers of one family in text without rewriting it.
func (m matcher) find(text string) []match {
	titleIdx := m.re.SubexpIndex("title")
	locs := m.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, match{
			Start: loc[0],
			End:   loc[1],
			Title: text[loc[2*titleIdx]:loc[2*titleIdx+1]],
		})
	}
	return matches
}

func (m matcher) replace(text string) (string, int) {
	matches := m.find(text)
	if len(matches) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, h := range matches {
		b.WriteString(text[last:h.Start])
		b.WriteString(Canonical(h.Title))
		last = h.End
	}
	b.WriteString(text[last:])
	return b.String(), len(matches)
}
