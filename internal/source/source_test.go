package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anne-skydancer/ds-collar-modular/internal/ui"
)

type fakeClipboard struct {
	content string
	err     error
	saved   []string
}

func newTestProvider(stdin string, piped bool, clip *fakeClipboard) *SourceProvider {
	return &SourceProvider{
		stdin:    strings.NewReader(stdin),
		isPiped:  func() bool { return piped },
		readClip: func() (string, error) { return clip.content, clip.err },
		saveClip: func(s string) error {
			clip.saved = append(clip.saved, s)
			return clip.err
		},
	}
}

func quietUI(t *testing.T) {
	t.Helper()
	old := ui.Out
	ui.Out = io.Discard
	t.Cleanup(func() { ui.Out = old })
}

func TestGetContentFromStdin(t *testing.T) {
	quietUI(t)
	clip := &fakeClipboard{content: "from clipboard"}
	sp := newTestProvider("from stdin", true, clip)

	content, origin, err := sp.GetContent()
	require.NoError(t, err)
	assert.Equal(t, "from stdin", content)
	assert.Equal(t, OriginStdin, origin)

	require.NoError(t, sp.PutBack("out", origin))
	assert.Empty(t, clip.saved)
}

func TestGetContentFromClipboard(t *testing.T) {
	quietUI(t)
	clip := &fakeClipboard{content: "from clipboard"}
	sp := newTestProvider("", false, clip)

	content, origin, err := sp.GetContent()
	require.NoError(t, err)
	assert.Equal(t, "from clipboard", content)
	assert.Equal(t, OriginClipboard, origin)

	require.NoError(t, sp.PutBack("out", origin))
	assert.Equal(t, []string{"out"}, clip.saved)
}

func TestGetContentEmptyClipboard(t *testing.T) {
	quietUI(t)
	sp := newTestProvider("", false, &fakeClipboard{content: "  \n"})

	content, _, err := sp.GetContent()
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestGetContentClipboardError(t *testing.T) {
	quietUI(t)
	sp := newTestProvider("", false, &fakeClipboard{err: errors.New("no xclip")})

	_, _, err := sp.GetContent()
	assert.ErrorContains(t, err, "no xclip")
}

func TestFromReader(t *testing.T) {
	quietUI(t)
	sp := FromReader(strings.NewReader("piped text"))

	content, origin, err := sp.GetContent()
	require.NoError(t, err)
	assert.Equal(t, "piped text", content)
	assert.Equal(t, OriginStdin, origin)
}
