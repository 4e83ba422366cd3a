package codec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/sniff"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "hello", "aGVsbG8="},
		{"unicode", "héllo ✓", base64.StdEncoding.EncodeToString([]byte("héllo ✓"))},
		{"newlines", "a\nb", "YQpi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEncodeRejectsEmptyAndInvalidUTF8(t *testing.T) {
	_, err := Encode("")
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err))

	_, err = Encode("bad \xff byte")
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err))

	_, err = EncodeBytes(nil)
	assert.True(t, errors.IsEncoding(err))
}

func TestDecodeText(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"padded", "aGVsbG8=", "hello"},
		{"unpadded", "aGVsbG8", "hello"},
		{"surrounding whitespace", "  aGVs\nbG8=\t", "hello"},
		{"unicode", base64.StdEncoding.EncodeToString([]byte("naïve café")), "naïve café"},
		{"latin1 fallback", base64.StdEncoding.EncodeToString([]byte{'c', 'a', 'f', 0xE9}), "café"},
		{"pdf marker in text", base64.StdEncoding.EncodeToString([]byte("%PDF is a file format")), "%PDF is a file format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input)
			require.NoError(t, err)
			assert.False(t, result.IsOutputFile)
			assert.Equal(t, tc.expected, result.Text)
			assert.Nil(t, result.Binary)
		})
	}
}

func TestDecodeBinary(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	result, err := Decode(encoded)
	require.NoError(t, err)
	assert.True(t, result.IsOutputFile)
	assert.Equal(t, sniff.MIMEPNG, result.MIMEType)
	assert.Equal(t, pngHeader, result.Binary)
}

func TestDecodeUnsniffedBinaryFallsBackToText(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	result, err := Decode(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.False(t, result.IsOutputFile)
	assert.Equal(t, string(data), result.Text)
}

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("plain text body"))

	result, err := Decode("data:text/plain;base64," + payload)
	require.NoError(t, err)
	assert.True(t, result.IsOutputFile)
	assert.Equal(t, sniff.MIMEType("text/plain"), result.MIMEType)
	assert.Equal(t, []byte("plain text body"), result.Binary)
}

func TestDecodeDataURIInvalidPayload(t *testing.T) {
	_, err := Decode("data:image/png;base64,@@@")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDecodeInvalidInput(t *testing.T) {
	for _, input := range []string{"", "   ", "not base64!", "a", "ab=c"} {
		t.Run(input, func(t *testing.T) {
			_, err := Decode(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestBinaryThreshold(t *testing.T) {
	// 8 signature bytes of which 5 are non-printable, padded with text.
	data := append([]byte{}, pngHeader[:8]...)
	for i := 0; i < 32; i++ {
		data = append(data, 'a')
	}
	ratio := NonPrintableRatio(data)
	require.InDelta(t, 5.0/40.0, ratio, 0.0001)

	strict := New(WithBinaryThreshold(0.05))
	result, err := strict.Decode(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.True(t, result.IsOutputFile)

	lenient := New(WithBinaryThreshold(0.5))
	result, err = lenient.Decode(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.False(t, result.IsOutputFile)

	assert.Equal(t, DefaultBinaryThreshold, New(WithBinaryThreshold(-1)).BinaryThreshold())
}

func TestEncodeDataURI(t *testing.T) {
	uri, err := New().EncodeDataURI(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), uri)

	uri, err = New().EncodeDataURI([]byte("text"))
	require.NoError(t, err)
	assert.Contains(t, uri, "data:application/octet-stream;base64,")

	result, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, []byte("text"), result.Binary)
}

func TestNonPrintableRatio(t *testing.T) {
	assert.Equal(t, 0.0, NonPrintableRatio(nil))
	assert.Equal(t, 0.0, NonPrintableRatio([]byte("abc")))
	assert.Equal(t, 0.5, NonPrintableRatio([]byte{'a', 0x00}))
}
