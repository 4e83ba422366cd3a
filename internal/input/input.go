// Package input reads tool input from files or stdin, enforcing a size
// ceiling and decoding legacy character sets to UTF-8.
package input

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// DefaultMaxBytes is the size ceiling used when none is configured.
const DefaultMaxBytes int64 = 10 << 20

// StdinPath selects standard input.
const StdinPath = "-"

// Reader loads input. The zero value is not usable; build one with New.
type Reader struct {
	maxBytes int64
	stdin    io.Reader
}

// New creates a Reader that refuses input larger than maxBytes. A
// non-positive maxBytes selects DefaultMaxBytes.
func New(maxBytes int64) *Reader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Reader{maxBytes: maxBytes, stdin: os.Stdin}
}

// WithStdin replaces the reader used for StdinPath.
func (r *Reader) WithStdin(stdin io.Reader) *Reader {
	cp := *r
	cp.stdin = stdin
	return &cp
}

// MaxBytes returns the configured ceiling.
func (r *Reader) MaxBytes() int64 { return r.maxBytes }

// ReadBytes returns the raw contents of path, or of stdin when path is "-".
func (r *Reader) ReadBytes(path string) ([]byte, error) {
	if path == StdinPath {
		return r.readLimited(r.stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIO(errors.ErrCodeFileNotFound, "file not found: "+path, err)
		}
		return nil, errors.NewIO(errors.ErrCodeFileNotFound, "cannot open "+path, err)
	}
	defer f.Close()

	return r.readLimited(f, path)
}

// ReadText returns the contents of path decoded to UTF-8.
func (r *Reader) ReadText(path string) (string, error) {
	data, err := r.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return DecodeText(data, "")
}

func (r *Reader) readLimited(src io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return nil, errors.NewIO(errors.ErrCodeFileNotFound, "cannot read "+name, err)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, errors.NewInvalidInput(errors.ErrCodeInputTooLarge, "input is larger than the configured limit").
			WithContext("source", name).
			WithContext("max_bytes", r.maxBytes)
	}
	return data, nil
}

// DecodeText converts data to UTF-8 using a byte order mark, a content type
// such as "text/html; charset=iso-8859-1", an HTML meta tag, or a guess, in
// that order. Valid UTF-8 without any of those is returned as is. A leading
// byte order mark is removed.
func DecodeText(data []byte, contentType string) (string, error) {
	if contentType == "" && utf8.Valid(data) {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}

	enc, name, _ := charset.DetermineEncoding(data, contentType)
	if enc == nil {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}

	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", errors.NewEncoding(errors.ErrCodeInvalidUTF8, "cannot decode input as "+name, err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}
