package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>héllo</p>"), 0o600))

	text, err := New(0).ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>héllo</p>", text)
}

func TestReadTextLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.txt")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9"), 0o600))

	text, err := New(0).ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestDecodeText(t *testing.T) {
	testCases := []struct {
		name        string
		data        []byte
		contentType string
		expected    string
	}{
		{"utf8", []byte("naïve"), "", "naïve"},
		{"utf8 bom", []byte("\xef\xbb\xbfbom"), "", "bom"},
		{"content type", []byte("\xe9t\xe9"), "text/plain; charset=iso-8859-1", "été"},
		{"meta charset", []byte("<meta charset=\"iso-8859-1\"><p>d\xe9j\xe0</p>"), "", `<meta charset="iso-8859-1"><p>déjà</p>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeText(tc.data, tc.contentType)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReadStdin(t *testing.T) {
	r := New(0).WithStdin(strings.NewReader("from stdin"))
	text, err := r.ReadText(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
}

func TestSizeLimit(t *testing.T) {
	r := New(4).WithStdin(strings.NewReader("12345"))
	_, err := r.ReadBytes(StdinPath)
	require.Error(t, err)

	var te *errors.ToolError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, errors.ErrCodeInputTooLarge, te.Code)
	assert.True(t, errors.IsInvalidInput(err))

	data, err := New(5).WithStdin(strings.NewReader("12345")).ReadBytes(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345"), data)
}

func TestMissingFile(t *testing.T) {
	_, err := New(0).ReadBytes(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var te *errors.ToolError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, errors.ErrCodeFileNotFound, te.Code)
}

func TestDefaultMaxBytes(t *testing.T) {
	assert.Equal(t, DefaultMaxBytes, New(-1).MaxBytes())
	assert.Equal(t, int64(42), New(42).MaxBytes())
}
