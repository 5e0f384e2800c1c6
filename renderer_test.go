package cliargs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rendererSchema() *Schema {
	return New(Config{
		Defaults: map[FlagKey]Value{
			'n': Int(5),
			'v': Bool(false),
			'f': String("out.txt"),
			'e': String(""),
		},
		LongNames: map[FlagKey]string{
			'n': "number",
			'v': "verbose",
		},
		Required: []FlagKey{'v'},
		Help: map[FlagKey]string{
			'n': "number of items",
		},
		DisableAutoHelp: true,
	})
}

func TestRenderer_FlagUsage(t *testing.T) {
	renderer := NewRendererWithWidth(rendererSchema(), 80)

	line := renderer.FlagUsage('n')
	assert.Equal(t, "  -n, --number              number of items (default: 5)", line)

	line = renderer.FlagUsage('v')
	assert.Contains(t, line, "-v, --verbose")
	assert.Contains(t, line, "(required)")
	assert.NotContains(t, line, "default", "required flags take no default annotation")

	line = renderer.FlagUsage('f')
	assert.Contains(t, line, `(default: "out.txt")`)

	line = renderer.FlagUsage('e')
	assert.Equal(t, "  -e", line, "empty string defaults stay unprinted")
}

func TestRenderer_BooleanDefaultUnprinted(t *testing.T) {
	schema := New(Config{Defaults: map[FlagKey]Value{'n': Int(5)}})
	renderer := NewRendererWithWidth(schema, 80)

	line := renderer.FlagUsage(HelpKey)
	assert.Contains(t, line, "-h, --help")
	assert.Contains(t, line, "Show this help message")
	assert.NotContains(t, line, "default")
}

func TestRenderer_Usage(t *testing.T) {
	renderer := NewRendererWithWidth(rendererSchema(), 80)

	usage := renderer.Usage("prog")
	require.True(t, strings.HasPrefix(usage, "Usage: prog [OPTIONS]\n\nOptions:\n"))

	lines := strings.Split(strings.TrimRight(usage, "\n"), "\n")
	// header, blank, "Options:", then one line per flag in ascending order
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[3], "  -e"))
	assert.True(t, strings.HasPrefix(lines[4], "  -f"))
	assert.True(t, strings.HasPrefix(lines[5], "  -n"))
	assert.True(t, strings.HasPrefix(lines[6], "  -v"))
}

func TestRenderer_WrapsToWidth(t *testing.T) {
	schema := New(Config{
		Defaults:        map[FlagKey]Value{'n': Int(5)},
		LongNames:       map[FlagKey]string{'n': "number"},
		Help:            map[FlagKey]string{'n': "number of items to process in a single batch before flushing"},
		DisableAutoHelp: true,
	})
	renderer := NewRendererWithWidth(schema, 48)

	line := renderer.FlagUsage('n')
	wrapped := strings.Split(line, "\n")
	require.Greater(t, len(wrapped), 1, "long help text should wrap")
	for _, continuation := range wrapped[1:] {
		assert.True(t, strings.HasPrefix(continuation, strings.Repeat(" ", 28)))
		assert.LessOrEqual(t, len(continuation), 48)
	}
}
