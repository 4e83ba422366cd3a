package tools

import (
	"context"
	"fmt"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/codec"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/cssgen"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/htmlmd"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/jsonfmt"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/jsx"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/markup"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/script"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/seo"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/sniff"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/textcase"
)

// Tool categories.
const (
	CategoryEncoding   = "encoding"
	CategoryHTML       = "html"
	CategoryJavaScript = "javascript"
	CategoryText       = "text"
	CategoryJSON       = "json"
	CategoryCSS        = "css"
)

func (r *Registry) builtins() []*Tool {
	md := htmlmd.New()

	return []*Tool{
		{
			Name:        "base64-encode",
			Category:    CategoryEncoding,
			Description: "Encode text or a file to Base64",
			BinaryInput: true,
			Options: []OptionSpec{
				{Name: "data_uri", Description: "wrap the result in a data: URI with the sniffed MIME type", Default: "false"},
			},
			Run: r.base64Encode,
		},
		{
			Name:        "base64-decode",
			Category:    CategoryEncoding,
			Description: "Decode Base64 or a data: URI to text or a file",
			Options: []OptionSpec{
				{Name: "binary_threshold", Description: "share of non-printable bytes above which a sniffed payload is a file"},
			},
			Run: r.base64Decode,
		},
		{
			Name:        "sniff",
			Category:    CategoryEncoding,
			Description: "Detect a file type from its leading bytes",
			BinaryInput: true,
			Run:         sniffTool,
		},
		{
			Name:        "validate-html",
			Category:    CategoryHTML,
			Description: "Report unclosed, mismatched and deprecated tags, missing alt text and DOCTYPE",
			Run:         validateHTML,
		},
		{
			Name:        "html-to-jsx",
			Category:    CategoryHTML,
			Description: "Rewrite HTML attributes and void tags as JSX",
			Run:         htmlToJSX,
		},
		{
			Name:        "html-to-markdown",
			Category:    CategoryHTML,
			Description: "Convert HTML to Markdown",
			Options: []OptionSpec{
				{Name: "sanitize", Description: "strip unsafe markup before converting", Default: "false"},
				{Name: "domain", Description: "base URL for relative links"},
			},
			Run: func(ctx context.Context, req Request) (*Response, error) {
				return htmlToMarkdown(md, req)
			},
		},
		{
			Name:        "seo-score",
			Category:    CategoryHTML,
			Description: "Score a page against on-page SEO checks",
			Run:         seoScore,
		},
		{
			Name:        "js-minify",
			Category:    CategoryJavaScript,
			Description: "Strip comments and whitespace from JavaScript",
			Options:     []OptionSpec{{Name: "engine", Description: "builtin or esbuild", Default: string(script.EngineBuiltin)}},
			Run:         r.jsRunner(script.ModeMinify),
		},
		{
			Name:        "js-beautify",
			Category:    CategoryJavaScript,
			Description: "Re-indent JavaScript",
			Options:     []OptionSpec{{Name: "engine", Description: "builtin or esbuild", Default: string(script.EngineBuiltin)}},
			Run:         r.jsRunner(script.ModeBeautify),
		},
		{
			Name:        "text-case",
			Category:    CategoryText,
			Description: "Convert text to upper, lower, title, sentence, camel, pascal, snake, kebab or constant case",
			Options:     []OptionSpec{{Name: "case", Description: "target case", Default: string(textcase.Lower)}},
			Run:         textCase,
		},
		{
			Name:        "json-format",
			Category:    CategoryJSON,
			Description: "Pretty-print JSON",
			Options:     []OptionSpec{{Name: "indent", Description: "spaces per level, 0 for tabs", Default: "2"}},
			Run:         jsonFormat,
		},
		{
			Name:        "json-compact",
			Category:    CategoryJSON,
			Description: "Remove insignificant whitespace from JSON",
			Run: func(_ context.Context, req Request) (*Response, error) {
				out, err := jsonfmt.Compact(req.Input)
				if err != nil {
					return nil, err
				}
				return &Response{Output: out}, nil
			},
		},
		{
			Name:        "json-to-yaml",
			Category:    CategoryJSON,
			Description: "Convert JSON to YAML",
			Run: func(_ context.Context, req Request) (*Response, error) {
				out, err := jsonfmt.ToYAML(req.Input)
				if err != nil {
					return nil, err
				}
				return &Response{Output: out}, nil
			},
		},
		{
			Name:        "css-box-shadow",
			Category:    CategoryCSS,
			Description: "Generate a box-shadow declaration",
			Options: []OptionSpec{
				{Name: "x", Default: "0", Description: "horizontal offset in px"},
				{Name: "y", Default: "4", Description: "vertical offset in px"},
				{Name: "blur", Default: "12", Description: "blur radius in px"},
				{Name: "spread", Default: "0", Description: "spread radius in px"},
				{Name: "color", Default: "#000000", Description: "hex or keyword color"},
				{Name: "opacity", Default: "0.25", Description: "0 to 1, hex colors only"},
				{Name: "inset", Default: "false", Description: "draw the shadow inside the box"},
			},
			Run: boxShadow,
		},
		{
			Name:        "css-gradient",
			Category:    CategoryCSS,
			Description: "Generate a linear-gradient background declaration",
			Options: []OptionSpec{
				{Name: "angle", Default: "90", Description: "direction in degrees"},
				{Name: "stops", Description: `color stops such as "#f00 0, blue 100"; the input is used when empty`},
			},
			Run: gradient,
		},
		{
			Name:        "css-border-radius",
			Category:    CategoryCSS,
			Description: "Generate a border-radius declaration",
			Options: []OptionSpec{
				{Name: "radius", Default: "8", Description: "value for every corner"},
				{Name: "top_left", Description: "overrides radius"},
				{Name: "top_right", Description: "overrides radius"},
				{Name: "bottom_right", Description: "overrides radius"},
				{Name: "bottom_left", Description: "overrides radius"},
				{Name: "unit", Default: "px", Description: "px, %, rem or em"},
			},
			Run: borderRadius,
		},
	}
}

func payload(req Request) []byte {
	if len(req.Data) > 0 {
		return req.Data
	}
	return []byte(req.Input)
}

func (r *Registry) base64Encode(_ context.Context, req Request) (*Response, error) {
	opts := options(req.Options)
	asURI, err := opts.flag("data_uri", false)
	if err != nil {
		return nil, err
	}

	c := codec.New(codec.WithBinaryThreshold(r.settings.BinaryThreshold))
	var out string
	switch {
	case asURI:
		out, err = c.EncodeDataURI(payload(req))
	case len(req.Data) > 0:
		out, err = c.EncodeBytes(req.Data)
	default:
		out, err = c.Encode(req.Input)
	}
	if err != nil {
		return nil, err
	}
	return &Response{Output: out}, nil
}

func (r *Registry) base64Decode(_ context.Context, req Request) (*Response, error) {
	threshold, err := options(req.Options).number("binary_threshold", r.settings.BinaryThreshold)
	if err != nil {
		return nil, err
	}
	if threshold <= 0 || threshold > 1 {
		return nil, badOption("binary_threshold", fmt.Sprint(threshold), "a number in (0, 1]")
	}

	res, err := codec.New(codec.WithBinaryThreshold(threshold)).Decode(req.Input)
	if err != nil {
		return nil, err
	}
	if !res.IsOutputFile {
		return &Response{Output: res.Text}, nil
	}
	return &Response{
		Binary:   res.Binary,
		MIMEType: string(res.MIMEType),
		Data: map[string]interface{}{
			"extension": sniff.Extension(res.MIMEType),
			"size":      len(res.Binary),
		},
	}, nil
}

func sniffTool(_ context.Context, req Request) (*Response, error) {
	data := payload(req)
	if len(data) == 0 {
		return nil, errors.NewInvalidInput(errors.ErrCodeEmptyInput, "nothing to sniff")
	}

	mime, ok := sniff.Detect(data)
	if !ok {
		return &Response{
			Output:   "unknown",
			Warnings: []string{"no known file signature matched"},
		}, nil
	}
	return &Response{
		Output:   string(mime),
		MIMEType: string(mime),
		Data:     map[string]interface{}{"extension": sniff.Extension(mime)},
	}, nil
}

func validateHTML(_ context.Context, req Request) (*Response, error) {
	issues := markup.Validate(req.Input)
	summary := markup.Summarize(issues)

	out := "No issues found"
	if len(issues) > 0 {
		out = fmt.Sprintf("%d errors, %d warnings", summary.Errors, summary.Warnings)
	}
	return &Response{Output: out, Issues: issues, Data: summary}, nil
}

func htmlToJSX(_ context.Context, req Request) (*Response, error) {
	res := jsx.Convert(req.Input)
	resp := &Response{Output: res.Output}
	if res.Warning != "" {
		resp.Warnings = []string{res.Warning}
	}
	return resp, nil
}

func htmlToMarkdown(md *htmlmd.Converter, req Request) (*Response, error) {
	opts := options(req.Options)
	sanitize, err := opts.flag("sanitize", false)
	if err != nil {
		return nil, err
	}

	out, err := md.Convert(req.Input, htmlmd.Options{Sanitize: sanitize, Domain: opts.text("domain", "")})
	if err != nil {
		return nil, err
	}
	return &Response{Output: out}, nil
}

func seoScore(_ context.Context, req Request) (*Response, error) {
	report, err := seo.Analyze(req.Input)
	if err != nil {
		return nil, err
	}

	resp := &Response{Output: fmt.Sprintf("Score: %d/100", report.Score), Data: report}
	for _, c := range report.Failed() {
		resp.Warnings = append(resp.Warnings, c.Message)
	}
	return resp, nil
}

func (r *Registry) jsRunner(mode script.Mode) RunFunc {
	return func(_ context.Context, req Request) (*Response, error) {
		engine, err := script.ParseEngine(options(req.Options).text("engine", string(r.settings.JSEngine)))
		if err != nil {
			return nil, err
		}

		res, err := script.New(script.WithEngine(engine)).Process(req.Input, mode)
		if err != nil {
			return nil, err
		}
		return &Response{Output: res.Output, Stats: res.Stats}, nil
	}
}

func textCase(_ context.Context, req Request) (*Response, error) {
	c, err := textcase.Parse(options(req.Options).text("case", string(textcase.Lower)))
	if err != nil {
		return nil, err
	}
	out, err := textcase.Convert(req.Input, c)
	if err != nil {
		return nil, err
	}
	return &Response{Output: out}, nil
}

func jsonFormat(_ context.Context, req Request) (*Response, error) {
	indent, err := options(req.Options).integer("indent", 2)
	if err != nil {
		return nil, err
	}
	out, err := jsonfmt.Format(req.Input, indent)
	if err != nil {
		return nil, err
	}
	return &Response{Output: out}, nil
}

func boxShadow(_ context.Context, req Request) (*Response, error) {
	opts := options(req.Options)
	s := cssgen.DefaultShadow()

	var err error
	if s.OffsetX, err = opts.integer("x", s.OffsetX); err != nil {
		return nil, err
	}
	if s.OffsetY, err = opts.integer("y", s.OffsetY); err != nil {
		return nil, err
	}
	if s.Blur, err = opts.integer("blur", s.Blur); err != nil {
		return nil, err
	}
	if s.Spread, err = opts.integer("spread", s.Spread); err != nil {
		return nil, err
	}
	if s.Opacity, err = opts.number("opacity", s.Opacity); err != nil {
		return nil, err
	}
	if s.Inset, err = opts.flag("inset", s.Inset); err != nil {
		return nil, err
	}
	s.Color = opts.text("color", s.Color)

	return declaration(cssgen.BoxShadow(s))
}

func gradient(_ context.Context, req Request) (*Response, error) {
	opts := options(req.Options)
	angle, err := opts.integer("angle", 90)
	if err != nil {
		return nil, err
	}

	raw := opts.text("stops", req.Input)
	if raw == "" {
		return nil, errors.NewInvalidInput(errors.ErrCodeEmptyInput, "no color stops given")
	}
	stops, err := cssgen.ParseStops(raw)
	if err != nil {
		return nil, err
	}

	return declaration(cssgen.LinearGradient(cssgen.Gradient{Angle: angle, Stops: stops}))
}

func borderRadius(_ context.Context, req Request) (*Response, error) {
	opts := options(req.Options)
	all, err := opts.integer("radius", 8)
	if err != nil {
		return nil, err
	}

	r := cssgen.UniformRadius(all, opts.text("unit", "px"))
	for _, corner := range []struct {
		key string
		dst *int
	}{
		{"top_left", &r.TopLeft},
		{"top_right", &r.TopRight},
		{"bottom_right", &r.BottomRight},
		{"bottom_left", &r.BottomLeft},
	} {
		if *corner.dst, err = opts.integer(corner.key, all); err != nil {
			return nil, err
		}
	}

	return declaration(cssgen.BorderRadius(r))
}

func declaration(d cssgen.Declaration, err error) (*Response, error) {
	if err != nil {
		return nil, err
	}
	return &Response{Output: d.String(), Data: d}, nil
}
