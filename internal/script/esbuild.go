package script

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// esbuildTransform minifies or pretty-prints source with esbuild's
// transform API. Parse errors become invalid input errors located at the
// first reported message.
func esbuildTransform(source string, mode Mode) (string, error) {
	opts := api.TransformOptions{
		Loader:        api.LoaderJS,
		Target:        api.ESNext,
		LegalComments: api.LegalCommentsInline,
	}
	if mode == ModeMinify {
		opts.MinifyWhitespace = true
		opts.MinifySyntax = true
	}

	result := api.Transform(source, opts)
	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		err := errors.NewInvalidInput(errors.ErrCodeSyntax, msg.Text).WithTool("js-" + string(mode))
		if msg.Location != nil {
			err = err.WithLocation(msg.Location.Line, msg.Location.Column+1)
		}
		if len(result.Errors) > 1 {
			err = err.WithContext("additional_errors", len(result.Errors)-1)
		}
		return "", err
	}

	return strings.TrimRight(string(result.Code), "\n"), nil
}
