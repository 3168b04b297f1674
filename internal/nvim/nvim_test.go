package nvim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostAddress(t *testing.T) {
	t.Setenv("NVIM", "")
	t.Setenv("NVIM_LISTEN_ADDRESS", "")
	assert.Empty(t, HostAddress())

	t.Setenv("NVIM_LISTEN_ADDRESS", "/tmp/legacy.sock")
	assert.Equal(t, "/tmp/legacy.sock", HostAddress())

	t.Setenv("NVIM", "/tmp/nvim.sock")
	assert.Equal(t, "/tmp/nvim.sock", HostAddress())
}

func TestDialMissingSocket(t *testing.T) {
	_, err := Dial(t.TempDir() + "/missing.sock")
	assert.Error(t, err)
}

func TestFnameescape(t *testing.T) {
	assert.Equal(t, `/repo/src/dev/a.lsl`, fnameescape("/repo/src/dev/a.lsl"))
	assert.Equal(t, `/my\ repo/\#1/a\%.lsl`, fnameescape("/my repo/#1/a%.lsl"))
}
