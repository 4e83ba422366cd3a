//go:build property

package script

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMinifyProperties checks the builtin minifier on sources built from a
// vocabulary without string literals.
func TestMinifyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	tokens := gen.SliceOf(gen.OneConstOf(
		"a", "b1", "foo", "42", "return", "var",
		"=", "+", "-", "!", "?", ":", ".", "(", ")", "{", "}", ";", ",",
		" ", "  ", "\n", "\t", "\r\n",
		"/* c */", "// x\n",
	)).Map(func(parts []interface{}) string {
		var b strings.Builder
		for _, p := range parts {
			b.WriteString(p.(string))
		}
		return b.String()
	})

	properties.Property("minify is idempotent", prop.ForAll(
		func(src string) bool {
			once, err := Process(src, ModeMinify)
			if err != nil {
				return false
			}
			twice, err := Process(once.Output, ModeMinify)
			if err != nil {
				return false
			}
			return once.Output == twice.Output
		},
		tokens,
	))

	properties.Property("minify never grows the source", prop.ForAll(
		func(src string) bool {
			res, err := Process(src, ModeMinify)
			return err == nil && res.Stats.MinifiedSize <= res.Stats.OriginalSize
		},
		tokens,
	))

	properties.Property("minified output has no newlines", prop.ForAll(
		func(src string) bool {
			res, err := Process(src, ModeMinify)
			return err == nil && !strings.ContainsAny(res.Output, "\r\n")
		},
		tokens,
	))

	properties.TestingRun(t)
}
