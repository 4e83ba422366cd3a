// Package textcase converts text between letter cases and identifier
// styles.
package textcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Case names a target style.
type Case string

const (
	Upper    Case = "upper"
	Lower    Case = "lower"
	Title    Case = "title"
	Sentence Case = "sentence"
	Camel    Case = "camel"
	Pascal   Case = "pascal"
	Snake    Case = "snake"
	Kebab    Case = "kebab"
	Constant Case = "constant"
)

// All lists every supported case in display order.
var All = []Case{Upper, Lower, Title, Sentence, Camel, Pascal, Snake, Kebab, Constant}

// Parse validates a case name.
func Parse(s string) (Case, error) {
	c := Case(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if c == known {
			return c, nil
		}
	}
	return "", errors.NewInvalidInput(errors.ErrCodeInvalidArgument, "unknown case: "+s)
}

// Convert rewrites text in the requested case. Upper, lower, title and
// sentence keep the text's spacing and punctuation; the identifier styles
// (camel, pascal, snake, kebab, constant) rebuild it from its words.
func Convert(text string, c Case) (string, error) {
	switch c {
	case Upper:
		return cases.Upper(language.Und).String(text), nil
	case Lower:
		return cases.Lower(language.Und).String(text), nil
	case Title:
		return cases.Title(language.English).String(text), nil
	case Sentence:
		return sentence(text), nil
	case Camel, Pascal:
		words := Words(text)
		title := cases.Title(language.English)
		for i, w := range words {
			if i == 0 && c == Camel {
				words[i] = strings.ToLower(w)
				continue
			}
			words[i] = title.String(w)
		}
		return strings.Join(words, ""), nil
	case Snake:
		return joinLower(text, "_"), nil
	case Kebab:
		return joinLower(text, "-"), nil
	case Constant:
		return strings.ToUpper(joinLower(text, "_")), nil
	default:
		return "", errors.NewInvalidInput(errors.ErrCodeInvalidArgument, "unknown case: "+string(c))
	}
}

func joinLower(text, sep string) string {
	words := Words(text)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// sentence lowercases text and capitalises the first letter at the start
// and after each '.', '!' or '?'.
func sentence(text string) string {
	lower := []rune(cases.Lower(language.Und).String(text))
	capitalise := true
	for i, r := range lower {
		switch {
		case r == '.' || r == '!' || r == '?':
			capitalise = true
		case capitalise && unicode.IsLetter(r):
			lower[i] = unicode.ToUpper(r)
			capitalise = false
		case capitalise && unicode.IsDigit(r):
			capitalise = false
		}
	}
	return string(lower)
}

// Words splits text into words at non-alphanumeric runes and at case
// boundaries, so "parseHTMLString v2" yields parse, HTML, String, v2.
func Words(text string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}
