package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = "# Notes\n" +
	"\n" +
	"The leash plugin:\n" +
	"\n" +
	"```lsl\n" +
	"integer DEBUG = TRUE;\n" +
	"```\n" +
	"\n" +
	"Shell:\n" +
	"\n" +
	"```sh\n" +
	"integer DEBUG = TRUE;\n" +
	"```\n" +
	"\n" +
	"```LSL\n" +
	"second block\n" +
	"```\n"

func TestExtractCodeBlocks(t *testing.T) {
	blocks, err := ExtractCodeBlocks([]byte(doc))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "lsl", blocks[0].Lang)
	assert.Equal(t, "The leash plugin:", blocks[0].Hint)
	assert.Equal(t, "integer DEBUG = TRUE;\n", doc[blocks[0].Start:blocks[0].End])

	assert.Equal(t, "sh", blocks[1].Lang)
	assert.Equal(t, "Shell:", blocks[1].Hint)

	assert.Equal(t, "LSL", blocks[2].Lang)
	assert.Empty(t, blocks[2].Hint)
}

func TestRewriteCodeBlocks(t *testing.T) {
	var hints []string
	shout := func(body, hint string) string {
		hints = append(hints, hint)
		return strings.ReplaceAll(body, "block", "BLOCK")
	}
	out, n, err := RewriteCodeBlocks(doc, ".lsl", shout)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only blocks whose body changes are counted")

	want := strings.Replace(doc, "```LSL\nsecond block\n", "```LSL\nsecond BLOCK\n", 1)
	assert.Equal(t, want, out)
	assert.Contains(t, out, "```sh\ninteger DEBUG = TRUE;\n```", "other languages untouched")
	assert.Equal(t, []string{"", "The leash plugin:"}, hints, "blocks are visited last to first")
}

func TestRewriteCodeBlocksNoMatch(t *testing.T) {
	out, n, err := RewriteCodeBlocks("plain text\n", "lsl", func(body, _ string) string { return strings.ToUpper(body) })
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "plain text\n", out)
}

func TestRewriteCodeBlocksEmptyBlock(t *testing.T) {
	in := "```lsl\n```\n"
	out, n, err := RewriteCodeBlocks(in, "lsl", func(string, string) string { return "x" })
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, in, out)
}
