// Package sniff recognises a handful of binary file formats from their
// leading bytes. It is deliberately not a general MIME sniffer: only the
// formats in the signature table are known, everything else is unrecognised.
package sniff

// MIMEType is a media type string such as "image/png".
type MIMEType string

const (
	MIMEJPEG MIMEType = "image/jpeg"
	MIMEPNG  MIMEType = "image/png"
	MIMEGIF  MIMEType = "image/gif"
	MIMEWEBP MIMEType = "image/webp"
	MIMEPDF  MIMEType = "application/pdf"
	MIMEZIP  MIMEType = "application/zip"

	// MIMEOctetStream is not part of the signature table; callers use it as
	// the fallback label for unrecognised binary data.
	MIMEOctetStream MIMEType = "application/octet-stream"
)

// wildcard marks a signature position that matches every byte value.
const wildcard = -1

// Signature maps a MIME type to the byte prefix that identifies it. Entries
// of Pattern are byte values 0-255, or -1 for "any byte".
type Signature struct {
	MIME      MIMEType
	Extension string
	Pattern   []int
}

// Matches reports whether b starts with the signature's pattern.
func (s Signature) Matches(b []byte) bool {
	if len(b) < len(s.Pattern) {
		return false
	}
	for i, want := range s.Pattern {
		if want != wildcard && int(b[i]) != want {
			return false
		}
	}
	return true
}

// signatures is ordered; the first match wins.
var signatures = []Signature{
	{MIME: MIMEJPEG, Extension: ".jpg", Pattern: []int{0xFF, 0xD8, 0xFF}},
	{MIME: MIMEPNG, Extension: ".png", Pattern: []int{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{MIME: MIMEGIF, Extension: ".gif", Pattern: []int{0x47, 0x49, 0x46, 0x38}},
	{MIME: MIMEWEBP, Extension: ".webp", Pattern: []int{
		0x52, 0x49, 0x46, 0x46,                 // RIFF
		wildcard, wildcard, wildcard, wildcard, // chunk size
		0x57, 0x45, 0x42, 0x50,                 // WEBP
	}},
	{MIME: MIMEPDF, Extension: ".pdf", Pattern: []int{0x25, 0x50, 0x44, 0x46}},
	{MIME: MIMEZIP, Extension: ".zip", Pattern: []int{0x50, 0x4B, 0x03, 0x04}},
}

// Signatures returns a copy of the signature table in match order.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	for i, s := range signatures {
		pattern := make([]int, len(s.Pattern))
		copy(pattern, s.Pattern)
		s.Pattern = pattern
		out[i] = s
	}
	return out
}

// Detect returns the MIME type of the first signature b starts with. The
// boolean is false when b is empty, too short, or matches nothing.
func Detect(b []byte) (MIMEType, bool) {
	for _, s := range signatures {
		if s.Matches(b) {
			return s.MIME, true
		}
	}
	return "", false
}

// Extension returns the file extension conventionally used for m, including
// the leading dot, or ".bin" when m is not in the signature table.
func Extension(m MIMEType) string {
	for _, s := range signatures {
		if s.MIME == m {
			return s.Extension
		}
	}
	return ".bin"
}
