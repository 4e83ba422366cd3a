package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

func TestConvert(t *testing.T) {
	const input = "hello wORLD-example_text"

	testCases := []struct {
		c        Case
		expected string
	}{
		{Upper, "HELLO WORLD-EXAMPLE_TEXT"},
		{Lower, "hello world-example_text"},
		{Camel, "helloWOrldExampleText"},
		{Pascal, "HelloWOrldExampleText"},
		{Snake, "hello_w_orld_example_text"},
		{Kebab, "hello-w-orld-example-text"},
		{Constant, "HELLO_W_ORLD_EXAMPLE_TEXT"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.c), func(t *testing.T) {
			got, err := Convert(input, tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestIdentifierStyles(t *testing.T) {
	testCases := []struct {
		input    string
		c        Case
		expected string
	}{
		{"user id", Camel, "userId"},
		{"parseHTMLString", Snake, "parse_html_string"},
		{"XMLHttpRequest", Kebab, "xml-http-request"},
		{"  max retry count  ", Constant, "MAX_RETRY_COUNT"},
		{"api_v2 client", Pascal, "ApiV2Client"},
		{"", Snake, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input+"/"+string(tc.c), func(t *testing.T) {
			got, err := Convert(tc.input, tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTitleAndSentence(t *testing.T) {
	got, err := Convert("the QUICK brown fox", Title)
	require.NoError(t, err)
	assert.Equal(t, "The Quick Brown Fox", got)

	got, err = Convert("HELLO there. how ARE you? fine! 3 cats.", Sentence)
	require.NoError(t, err)
	assert.Equal(t, "Hello there. How are you? Fine! 3 cats.", got)
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"parse", "HTML", "String", "v2"}, Words("parseHTMLString v2"))
	assert.Equal(t, []string{"héllo", "Wörld"}, Words("héllo-Wörld"))
	assert.Empty(t, Words(" -_ "))
}

func TestParse(t *testing.T) {
	c, err := Parse(" Kebab ")
	require.NoError(t, err)
	assert.Equal(t, Kebab, c)

	_, err = Parse("sarcastic")
	assert.True(t, errors.IsInvalidInput(err))

	_, err = Convert("x", Case("sarcastic"))
	assert.True(t, errors.IsInvalidInput(err))
}
