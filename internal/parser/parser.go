package parser

import (
	"strings"
)

// RewriteCodeBlocks applies fn to the body of every fenced code block whose
// language is lang (compared case-insensitively, leading dot ignored) and
// returns the document with those bodies replaced. fn also receives the
// block's hint. Everything outside the matching blocks is kept byte for byte.
// It also reports how many block bodies fn actually changed.
func RewriteCodeBlocks(source string, lang string, fn func(body, hint string) string) (string, int, error) {
	blocks, err := ExtractCodeBlocks([]byte(source))
	if err != nil {
		return "", 0, err
	}

	want := normalizeLang(lang)
	out := source
	changed := 0
	// Right to left so earlier offsets stay valid.
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		if normalizeLang(block.Lang) != want || block.End <= block.Start {
			continue
		}
		body := out[block.Start:block.End]
		rewritten := fn(body, block.Hint)
		if rewritten == body {
			continue
		}
		out = out[:block.Start] + rewritten + out[block.End:]
		changed++
	}
	return out, changed, nil
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(lang), "."))
}
