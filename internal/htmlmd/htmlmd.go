// Package htmlmd converts HTML fragments and documents to Markdown.
package htmlmd

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/validation"
)

// Options controls a conversion.
type Options struct {
	// Sanitize strips scripts, event handlers and other unsafe markup with
	// bluemonday's user-generated-content policy before converting.
	Sanitize bool
	// Domain resolves relative links and image sources, e.g.
	// "https://example.com".
	Domain string
}

// Converter is safe for concurrent use.
type Converter struct {
	md     *converter.Converter
	policy *bluemonday.Policy
}

// New builds a Converter with the base, CommonMark and table plugins.
func New() *Converter {
	return &Converter{
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Convert returns the Markdown form of html, trimmed of surrounding blank
// lines.
func (c *Converter) Convert(html string, opts Options) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", errors.NewInvalidInput(errors.ErrCodeEmptyInput, "no HTML to convert")
	}

	if opts.Domain != "" {
		if err := validation.ValidateBaseURL(opts.Domain); err != nil {
			return "", err
		}
	}

	if opts.Sanitize {
		html = c.policy.Sanitize(html)
	}

	var md string
	var err error
	if opts.Domain != "" {
		md, err = c.md.ConvertString(html, converter.WithDomain(opts.Domain))
	} else {
		md, err = c.md.ConvertString(html)
	}
	if err != nil {
		return "", errors.NewEncoding(errors.ErrCodeInternalError, "cannot convert HTML to Markdown", err)
	}
	return strings.TrimSpace(md), nil
}
