// Package highlight colorizes tool output for terminals with chroma.
package highlight

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Defaults used when Options leaves a field empty.
const (
	DefaultStyle     = "monokai"
	DefaultFormatter = "terminal256"
)

// Options selects the chroma style and formatter by name.
type Options struct {
	Style     string
	Formatter string
}

// Write tokenises source with the lexer for language and writes it to w.
// An unknown language is guessed from the source, then treated as plain
// text. Unknown styles and formatters fall back to chroma's defaults.
func Write(w io.Writer, source, language string, opts Options) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	styleName := opts.Style
	if styleName == "" {
		styleName = DefaultStyle
	}
	formatterName := opts.Formatter
	if formatterName == "" {
		formatterName = DefaultFormatter
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return errors.NewInternal(errors.ErrCodeInternalError, "cannot tokenise output", err)
	}
	if err := formatters.Get(formatterName).Format(w, styles.Get(styleName), iterator); err != nil {
		return errors.WrapIO(err, errors.ErrCodeInternalError, "cannot write highlighted output")
	}
	return nil
}

// Language returns the chroma lexer name for a tool's output, or "" when
// the output is not code.
func Language(tool string) string {
	switch tool {
	case "html-to-jsx":
		return "react"
	case "js-minify", "js-beautify":
		return "javascript"
	case "json-format", "json-compact":
		return "json"
	case "json-to-yaml":
		return "yaml"
	case "css-box-shadow", "css-gradient", "css-border-radius":
		return "css"
	case "html-to-markdown":
		return "markdown"
	default:
		return ""
	}
}
