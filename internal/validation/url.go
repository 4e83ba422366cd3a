// Package validation checks user-supplied values that end up embedded in
// generated output.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// ValidateBaseURL accepts absolute http and https URLs with a host. Base URLs
// are copied into every rewritten link, so whitespace, quotes and angle
// brackets are rejected outright.
func ValidateBaseURL(rawURL string) error {
	if strings.ContainsAny(rawURL, " \t\r\n\"'<>`\\") {
		return invalidURL(rawURL, "contains whitespace, quotes or angle brackets")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return invalidURL(rawURL, err.Error())
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return invalidURL(rawURL, fmt.Sprintf("scheme %q is not http or https", parsed.Scheme))
	}

	if parsed.Host == "" {
		return invalidURL(rawURL, "missing host")
	}

	return nil
}

func invalidURL(rawURL, reason string) error {
	return errors.NewInvalidInput(errors.ErrCodeInvalidArgument, "invalid base URL: "+reason).
		WithContext("url", rawURL)
}
