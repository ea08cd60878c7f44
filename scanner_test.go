package rjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipWSSkipsWhitespaceAndComments(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    string
		expected byte
	}{
		{"spaces", "   x", 'x'},
		{"tabs and returns", "\t\t\r\rx", 'x'},
		{"newlines", "\n\n\nx", 'x'},
		{"hash comment", "# a comment\nx", 'x'},
		{"slash-slash comment", "// a comment\nx", 'x'},
		{"block comment", "/* a\nmultiline\ncomment */x", 'x'},
		{"chained comments", "# one\n// two\n/* three */ x", 'x'},
		{"lone slash is significant", "/x", '/'},
	} {
		t.Run(test.name, func(t *testing.T) {
			b, ok, err := skipWS(NewStrRead(test.input))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, test.expected, b)
		})
	}
}

func TestSkipWSAtEOF(t *testing.T) {
	for _, input := range []string{"", "   ", "# comment", "/* unterminated"} {
		t.Run(input, func(t *testing.T) {
			_, ok, err := skipWS(NewStrRead(input))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSkipWSNotingNewlineTracksCrossedNewlines(t *testing.T) {
	var hadNewline bool
	_, ok, err := skipWSNotingNewline(NewStrRead("   x"), &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, hadNewline)

	hadNewline = false
	_, ok, err = skipWSNotingNewline(NewStrRead("  \n  x"), &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, hadNewline)

	hadNewline = false
	_, ok, err = skipWSNotingNewline(NewStrRead("# comment\nx"), &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, hadNewline)
}

func TestSkipWSUntilNewlineStopsAtFirstNewline(t *testing.T) {
	var hadNewline bool
	r := NewStrRead("\n  x")
	b, ok, err := skipWSUntilNewline(r, &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, hadNewline)
	assert.Equal(t, byte('\n'), b)

	// The newline itself is left unconsumed, for a container's own
	// separator check to discover and cross in turn.
	next, ok, err := peekByte(r)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('\n'), next)

	hadNewline = false
	b, ok, err = skipWSUntilNewline(NewStrRead(",x"), &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, hadNewline)
	assert.Equal(t, byte(','), b)
}

func TestSkipWSUntilNewlineIgnoresNewlinesInsideBlockComment(t *testing.T) {
	var hadNewline bool
	b, ok, err := skipWSUntilNewline(NewStrRead("/* a\nb */,"), &hadNewline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, hadNewline)
	assert.Equal(t, byte(','), b)
}
