// Package parser locates and rewrites fenced code blocks in Markdown.
package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock represents a parsed code block from markdown content.
type CodeBlock struct {
	// Hint is the content of the paragraph immediately preceding the code
	// block, typically naming the script the block belongs to.
	Hint string
	// Lang is the language identifier of the code block (e.g., "lsl").
	Lang string
	// Start and End delimit the block body in the source, fences excluded.
	// Both are zero for an empty block.
	Start, End int
}

// ExtractCodeBlocks uses a markdown AST to find all fenced code blocks
// and their preceding paragraph, which is treated as a hint.
func ExtractCodeBlocks(source []byte) ([]CodeBlock, error) {
	var blocks []CodeBlock
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fencedCodeBlock, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := CodeBlock{Lang: string(fencedCodeBlock.Language(source))}

		lines := fencedCodeBlock.Lines()
		if lines.Len() > 0 {
			block.Start = lines.At(0).Start
			block.End = lines.At(lines.Len() - 1).Stop
		}

		if prev := fencedCodeBlock.PreviousSibling(); prev != nil {
			if p, ok := prev.(*ast.Paragraph); ok {
				block.Hint = strings.TrimSpace(string(paragraphText(p, source)))
			}
		}

		blocks = append(blocks, block)
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}

	return blocks, nil
}

func paragraphText(p *ast.Paragraph, source []byte) []byte {
	var b bytes.Buffer
	lines := p.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return b.Bytes()
}
