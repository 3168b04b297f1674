// Package buildflags keeps the DEBUG and PRODUCTION declarations of a script
// in line with the branch folder the script lives in.
package buildflags

import (
	"fmt"
	"regexp"
	"slices"
)

// Flags is the pair of values a branch requires.
type Flags struct {
	Debug      bool
	Production bool
}

// branches maps the branch folder under src/ to its flags.
var branches = map[string]Flags{
	"dev":    {Debug: true, Production: false},
	"ng":     {Debug: true, Production: false},
	"stable": {Debug: false, Production: true},
}

const sourceDir = "src"

var (
	debugDecl      = regexp.MustCompile(`integer\s+DEBUG\s*=\s*(TRUE|FALSE)\s*;`)
	productionDecl = regexp.MustCompile(`integer\s+PRODUCTION\s*=\s*(TRUE|FALSE)\s*;`)
)

// Lookup returns the flags for a path given as root-relative segments, e.g.
// ["src", "dev", "foo.lsl"]. ok is false when the path is outside every known
// branch folder.
func Lookup(segments []string) (Flags, bool) {
	if len(segments) < 2 || segments[0] != sourceDir {
		return Flags{}, false
	}
	f, ok := branches[segments[1]]
	return f, ok
}

// Branches lists the branch folder names that carry a decision.
func Branches() []string {
	names := make([]string, 0, len(branches))
	for name := range branches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func literal(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func declaration(name string, v bool) string {
	return fmt.Sprintf("integer %s = %s;", name, literal(v))
}

// Apply rewrites the flag declarations in text to match f. Existing
// declarations are overwritten in place. When exactly one of the pair is
// declared, the missing one is inserted next to it. A text declaring neither
// is returned unchanged.
func Apply(text string, f Flags) string {
	text = debugDecl.ReplaceAllLiteralString(text, declaration("DEBUG", f.Debug))
	text = productionDecl.ReplaceAllLiteralString(text, declaration("PRODUCTION", f.Production))

	debugLoc := debugDecl.FindStringIndex(text)
	productionLoc := productionDecl.FindStringIndex(text)
	hasDebug, hasProduction := debugLoc != nil, productionLoc != nil

	switch {
	case hasDebug && hasProduction:
		return text
	case hasDebug:
		at := debugLoc[1]
		return text[:at] + "\n" + declaration("PRODUCTION", f.Production) + text[at:]
	case hasProduction:
		at := productionLoc[0]
		return text[:at] + declaration("DEBUG", f.Debug) + "\n" + text[at:]
	default:
		// Neither is declared; inserting both from scratch is left to a human.
		return text
	}
}
