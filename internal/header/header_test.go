package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{
			name:  "double-line box",
			input: "/* ═══\n   MY SECTION\n   ═══ */",
			want:  "/* -------------------- MY SECTION -------------------- */",
			count: 1,
		},
		{
			name:  "long double-line box with indented title",
			input: "/* ═══════════════════════════\n     STATE MANAGEMENT\n     ═══════════════════════════ */\n",
			want:  "/* -------------------- STATE MANAGEMENT -------------------- */\n",
			count: 1,
		},
		{
			name:  "equals box",
			input: "/* =====\n Title\n===== */",
			want:  "/* -------------------- Title -------------------- */",
			count: 1,
		},
		{
			name:  "dash box",
			input: "/*----------\n  ACL helpers  \n  ---------- */",
			want:  "/* -------------------- ACL helpers -------------------- */",
			count: 1,
		},
		{
			name:  "tilde box",
			input: "/* ~~~~~~\nx\n~~~~~~ */",
			want:  "/* -------------------- x -------------------- */",
			count: 1,
		},
		{
			name:  "star box",
			input: "/*******\n EVENTS\n ******/",
			want:  "/* -------------------- EVENTS -------------------- */",
			count: 1,
		},
		{
			name:  "internal spaces collapse",
			input: "/* ═══\n   A    B\tC\n   ═══ */",
			want:  "/* -------------------- A B C -------------------- */",
			count: 1,
		},
		{
			name:  "whitespace-only title",
			input: "/* ═══\n   \n═══ */",
			want:  "/* --------------------  -------------------- */",
			count: 1,
		},
		{
			name:  "ascii run too short",
			input: "/* ----\nTitle\n---- */",
			want:  "/* ----\nTitle\n---- */",
			count: 0,
		},
		{
			name:  "two-line title is not a box",
			input: "/* ═══\n  One\n  Two\n  ═══ */",
			want:  "/* ═══\n  One\n  Two\n  ═══ */",
			count: 0,
		},
		{
			name:  "plain comment untouched",
			input: "// just code\ninteger x = 1; /* note */\n",
			want:  "// just code\ninteger x = 1; /* note */\n",
			count: 0,
		},
		{
			name: "multiple boxes of both families keep surrounding text",
			input: "default {\n/* ═══\n ONE\n ═══ */\n    state_entry() {}\n" +
				"/* =======\n TWO\n ======= */\n}\n",
			want: "default {\n/* -------------------- ONE -------------------- */\n    state_entry() {}\n" +
				"/* -------------------- TWO -------------------- */\n}\n",
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count, n)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"/* ═══\n   MY SECTION\n   ═══ */",
		"/* =====\n Title\n===== */\n/* -----\n Other\n----- */\n",
		"/* --------------------  -------------------- */",
		"/* -------------------- A -------------------- */\n/* -------------------- B -------------------- */\n",
	}
	for _, in := range inputs {
		once, _ := Normalize(in)
		twice, n := Normalize(once)
		assert.Equal(t, once, twice)
		assert.Zero(t, n, "canonical header re-matched in %q", once)
	}
}

func TestCollapseTitle(t *testing.T) {
	assert.Equal(t, "Some Title", CollapseTitle("   Some \n Title  "))
	assert.Equal(t, "", CollapseTitle(" \t\n "))
	assert.Equal(t, "X", CollapseTitle("X"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "/* -------------------- MY SECTION -------------------- */", Canonical(" MY\n SECTION "))
	assert.Equal(t, "/* --------------------  -------------------- */", Canonical(""))
}
