package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		// Valid URLs
		{name: "http with port", url: "http://localhost:8080"},
		{name: "https", url: "https://example.com"},
		{name: "ip with port", url: "http://127.0.0.1:3000"},
		{name: "with path", url: "https://example.com/docs/"},
		{name: "with query", url: "https://example.com?lang=en"},

		// Invalid schemes
		{name: "javascript scheme", url: "javascript:alert(1)", expectErr: true},
		{name: "file scheme", url: "file:///etc/passwd", expectErr: true},
		{name: "data scheme", url: "data:text/html,hi", expectErr: true},
		{name: "ftp scheme", url: "ftp://ftp.example.com", expectErr: true},
		{name: "relative", url: "/docs", expectErr: true},

		// Characters that would break out of an attribute or link
		{name: "space", url: "https://example.com/a b", expectErr: true},
		{name: "newline", url: "https://example.com/\n", expectErr: true},
		{name: "double quote", url: `https://example.com/"onload`, expectErr: true},
		{name: "angle bracket", url: "https://example.com/<script>", expectErr: true},

		// Structure
		{name: "missing host", url: "https://", expectErr: true},
		{name: "empty", url: "", expectErr: true},
		{name: "bad escape", url: "https://example.com/%zz", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.url)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}
