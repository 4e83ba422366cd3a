// Package jsonfmt pretty-prints, compacts and converts JSON documents,
// reporting syntax errors with a line and column.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// MaxIndent is the widest indent Format accepts.
const MaxIndent = 8

// Format re-indents src with indent spaces per level, or a tab when indent
// is 0.
func Format(src string, indent int) (string, error) {
	if indent < 0 || indent > MaxIndent {
		return "", errors.NewInvalidInput(errors.ErrCodeInvalidArgument,
			"indent must be between 0 and 8")
	}
	data, err := validate(src)
	if err != nil {
		return "", err
	}

	unit := "\t"
	if indent > 0 {
		unit = strings.Repeat(" ", indent)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", unit); err != nil {
		return "", syntaxError(src, err)
	}
	return buf.String(), nil
}

// Compact removes insignificant whitespace from src.
func Compact(src string) (string, error) {
	data, err := validate(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", syntaxError(src, err)
	}
	return buf.String(), nil
}

// ToYAML converts src to a YAML document. Object keys come out sorted and
// integers are never rewritten as floats.
func ToYAML(src string) (string, error) {
	data, err := validate(src)
	if err != nil {
		return "", err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", syntaxError(src, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", errors.NewEncoding(errors.ErrCodeInvalidJSON, "cannot encode document as YAML", err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.NewEncoding(errors.ErrCodeInvalidJSON, "cannot encode document as YAML", err)
	}
	return buf.String(), nil
}

func validate(src string) ([]byte, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errors.NewInvalidInput(errors.ErrCodeEmptyInput, "no JSON to process")
	}
	data := []byte(src)
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, syntaxError(src, err)
	}
	return data, nil
}

// syntaxError converts a json error into an invalid input error located at
// the offending byte.
func syntaxError(src string, err error) error {
	te := errors.Wrap(err, errors.ErrorTypeInvalidInput, errors.ErrCodeInvalidJSON, "invalid JSON")

	var se *json.SyntaxError
	if errors.As(err, &se) {
		line, col := Position(src, se.Offset)
		te = te.WithLocation(line, col)
	}
	return te
}

// Position converts the offset reported by encoding/json, which counts the
// offending byte, into a 1-based line and column.
func Position(src string, offset int64) (line, column int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}
	before := src[:pos]
	line = strings.Count(before, "\n") + 1
	column = pos - strings.LastIndex(before, "\n")
	return line, column
}
