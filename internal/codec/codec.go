// Package codec encodes text and binary data to Base64 and decodes Base64
// back, deciding whether decoded output is a file or readable text.
//
// Decoding follows a fixed order:
//
//  1. A "data:<mime>;base64," prefix short-circuits everything else; the
//     payload is returned as a binary file labelled with the URI's MIME type.
//  2. Whitespace is stripped and the rest must use the Base64 alphabet.
//  3. The payload is decoded, sniffed for a known file signature, and scored
//     by the share of bytes outside printable ASCII.
//  4. Only when the sniffer recognises a format and the score exceeds the
//     binary threshold is the result treated as a binary file.
//  5. Otherwise the bytes are returned as text: UTF-8 when valid, and one
//     rune per byte (Latin-1) when not. Nothing fails after step 2.
package codec

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/sniff"
)

// DefaultBinaryThreshold is the share of non-printable bytes above which a
// sniffed payload is treated as binary.
const DefaultBinaryThreshold = 0.10

var (
	dataURIPattern  = regexp.MustCompile(`(?s)^data:([^;,]+);base64,(.*)$`)
	alphabetPattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// DecodeResult holds either decoded text or a decoded binary file.
type DecodeResult struct {
	Text         string         `json:"text,omitempty"`
	Binary       []byte         `json:"-"`
	MIMEType     sniff.MIMEType `json:"mime_type,omitempty"`
	IsOutputFile bool           `json:"is_output_file"`
}

// Codec converts between Base64 and text or bytes. The zero value is not
// usable; build one with New.
type Codec struct {
	binaryThreshold float64
}

// Option configures a Codec.
type Option func(*Codec)

// WithBinaryThreshold overrides DefaultBinaryThreshold. Values outside (0, 1]
// are ignored.
func WithBinaryThreshold(threshold float64) Option {
	return func(c *Codec) {
		if threshold > 0 && threshold <= 1 {
			c.binaryThreshold = threshold
		}
	}
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	c := &Codec{binaryThreshold: DefaultBinaryThreshold}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BinaryThreshold returns the threshold the codec was configured with.
func (c *Codec) BinaryThreshold() float64 {
	return c.binaryThreshold
}

var defaultCodec = New()

// Encode encodes text with the default codec.
func Encode(text string) (string, error) { return defaultCodec.Encode(text) }

// EncodeBytes encodes raw bytes with the default codec.
func EncodeBytes(b []byte) (string, error) { return defaultCodec.EncodeBytes(b) }

// Decode decodes input with the default codec.
func Decode(input string) (*DecodeResult, error) { return defaultCodec.Decode(input) }

// Encode returns the Base64 form of text's UTF-8 bytes, so any Unicode text
// survives a round trip through Decode.
func (c *Codec) Encode(text string) (string, error) {
	if text == "" {
		return "", errors.NewEncoding(errors.ErrCodeEmptyInput, "nothing to encode", nil)
	}
	if !utf8.ValidString(text) {
		return "", errors.NewEncoding(errors.ErrCodeInvalidUTF8,
			"text contains an invalid Unicode sequence", nil)
	}
	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// EncodeBytes returns the Base64 form of b.
func (c *Codec) EncodeBytes(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errors.NewEncoding(errors.ErrCodeEmptyInput, "nothing to encode", nil)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// EncodeDataURI wraps the Base64 form of b in a data URI labelled with the
// sniffed MIME type, or application/octet-stream when nothing matches.
func (c *Codec) EncodeDataURI(b []byte) (string, error) {
	payload, err := c.EncodeBytes(b)
	if err != nil {
		return "", err
	}
	mime, ok := sniff.Detect(b)
	if !ok {
		mime = sniff.MIMEOctetStream
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, payload), nil
}

// Decode turns Base64 input into text or a binary file.
func (c *Codec) Decode(input string) (*DecodeResult, error) {
	trimmed := strings.TrimSpace(input)

	if m := dataURIPattern.FindStringSubmatch(trimmed); m != nil {
		data, err := decodeBase64(stripWhitespace(m[2]))
		if err != nil {
			return nil, err
		}
		return &DecodeResult{
			Binary:       data,
			MIMEType:     sniff.MIMEType(strings.TrimSpace(m[1])),
			IsOutputFile: true,
		}, nil
	}

	payload := stripWhitespace(trimmed)
	if !alphabetPattern.MatchString(payload) {
		return nil, errors.NewInvalidInput(errors.ErrCodeInvalidBase64,
			"input contains characters outside the Base64 alphabet")
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, err
	}

	mime, sniffed := sniff.Detect(data)
	if sniffed && c.LooksBinary(data) {
		return &DecodeResult{
			Binary:       data,
			MIMEType:     mime,
			IsOutputFile: true,
		}, nil
	}

	return &DecodeResult{Text: bytesToText(data)}, nil
}

// LooksBinary reports whether the share of bytes outside printable ASCII
// (32-126) exceeds the codec's threshold.
func (c *Codec) LooksBinary(data []byte) bool {
	return NonPrintableRatio(data) > c.binaryThreshold
}

// NonPrintableRatio returns the fraction of bytes outside 32-126. An empty
// slice scores zero.
func NonPrintableRatio(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	n := 0
	for _, b := range data {
		if b < 32 || b > 126 {
			n++
		}
	}
	return float64(n) / float64(len(data))
}

// decodeBase64 accepts padded and unpadded payloads.
func decodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	data, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	if rawErr == nil {
		return data, nil
	}
	return nil, errors.Wrap(err, errors.ErrorTypeInvalidInput, errors.ErrCodeInvalidBase64,
		"input is not valid Base64")
}

func bytesToText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	latin1, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(latin1)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
