package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, `{"a": 1}`, "json", Options{}))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), `"a"`)
}

func TestWriteNoopKeepsText(t *testing.T) {
	const src = "function f(){return 1}"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, "javascript", Options{Formatter: "noop"}))
	// Some lexers append a final newline.
	assert.Equal(t, src, strings.TrimRight(buf.String(), "\n"))
}

func TestWriteUnknownLanguage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "plain words", "no-such-language", Options{Formatter: "noop", Style: "no-such-style"}))
	assert.Equal(t, "plain words", strings.TrimRight(buf.String(), "\n"))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "javascript", Language("js-minify"))
	assert.Equal(t, "css", Language("css-gradient"))
	assert.Equal(t, "", Language("sniff"))
}
