// Package script minifies and re-indents JavaScript source.
//
// The builtin engine is a pair of heuristics: minification is a fixed list of
// regex substitutions and beautification is a single character scan that only
// understands string literals. Neither is aware of regular expression
// literals or comments inside strings, so such sources can be corrupted. The
// esbuild engine parses the source and is exact, at the cost of rejecting
// code that does not parse.
package script

import (
	"regexp"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Mode selects the transformation.
type Mode string

const (
	ModeMinify   Mode = "minify"
	ModeBeautify Mode = "beautify"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMinify, ModeBeautify:
		return m, nil
	default:
		return "", errors.NewInvalidInput(errors.ErrCodeInvalidMode,
			"unknown mode "+s+": expected minify or beautify")
	}
}

// Engine selects the implementation used by a Processor.
type Engine string

const (
	EngineBuiltin Engine = "builtin"
	EngineESBuild Engine = "esbuild"
)

// ParseEngine validates an engine name. The empty string selects the builtin
// engine.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "", EngineBuiltin:
		return EngineBuiltin, nil
	case EngineESBuild:
		return e, nil
	default:
		return "", errors.NewInvalidInput(errors.ErrCodeInvalidArgument,
			"unknown engine "+s+": expected builtin or esbuild")
	}
}

// Stats compares input and output sizes in UTF-8 bytes.
type Stats struct {
	OriginalSize int `json:"original_size" yaml:"original_size"`
	MinifiedSize int `json:"minified_size" yaml:"minified_size"`
}

// Saved returns the fraction of the original size removed, from 0 to 1.
func (s Stats) Saved() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.OriginalSize-s.MinifiedSize) / float64(s.OriginalSize)
}

// Result of Process. Stats is set only in minify mode.
type Result struct {
	Output string `json:"output" yaml:"output"`
	Stats  *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Processor runs one engine.
type Processor struct {
	engine Engine
}

// Option configures a Processor.
type Option func(*Processor)

// WithEngine selects the engine. Unknown engines are ignored.
func WithEngine(e Engine) Option {
	return func(p *Processor) {
		if e == EngineBuiltin || e == EngineESBuild {
			p.engine = e
		}
	}
}

// New creates a Processor using the builtin engine unless told otherwise.
func New(opts ...Option) *Processor {
	p := &Processor{engine: EngineBuiltin}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Engine returns the configured engine.
func (p *Processor) Engine() Engine { return p.engine }

var defaultProcessor = New()

// Process runs the builtin engine.
func Process(source string, mode Mode) (Result, error) {
	return defaultProcessor.Process(source, mode)
}

// Process transforms source according to mode. The mode is checked before
// anything else; empty source then yields empty output.
func (p *Processor) Process(source string, mode Mode) (res Result, err error) {
	if mode != ModeMinify && mode != ModeBeautify {
		return Result{}, errors.NewInvalidInput(errors.ErrCodeInvalidMode,
			"unknown mode "+string(mode)+": expected minify or beautify")
	}

	defer errors.Recover("js-"+string(mode), &err)

	var out string
	switch {
	case source == "":
	case p.engine == EngineESBuild:
		out, err = esbuildTransform(source, mode)
		if err != nil {
			return Result{}, err
		}
	case mode == ModeMinify:
		out = Minify(source)
	default:
		out = Beautify(source)
	}

	res = Result{Output: out}
	if mode == ModeMinify {
		res.Stats = &Stats{OriginalSize: len(source), MinifiedSize: len(out)}
	}
	return res, nil
}

// MinifyStep is one stage of the builtin minifier.
type MinifyStep struct {
	Name  string
	Apply func(string) string
}

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(?m)//.*$`)
	whitespaceRun       = regexp.MustCompile(`\s{2,}`)
	operatorSpacing     = regexp.MustCompile(`\s*([=+\-*/%&|^<>!?:;,.(){}])\s*`)
	semicolonBrace      = regexp.MustCompile(`;+\}`)
	newlines            = regexp.MustCompile(`[\r\n]+`)
)

var minifySteps = []MinifyStep{
	{Name: "comments", Apply: stripComments},
	{Name: "whitespace", Apply: func(s string) string { return whitespaceRun.ReplaceAllString(s, " ") }},
	{Name: "operators", Apply: func(s string) string { return operatorSpacing.ReplaceAllString(s, "$1") }},
	{Name: "semicolons", Apply: func(s string) string { return semicolonBrace.ReplaceAllString(s, "}") }},
	{Name: "newlines", Apply: func(s string) string { return newlines.ReplaceAllString(s, "") }},
	{Name: "trim", Apply: strings.TrimSpace},
}

// MinifySteps returns the builtin minifier's stages in order.
func MinifySteps() []MinifyStep {
	out := make([]MinifyStep, len(minifySteps))
	copy(out, minifySteps)
	return out
}

// Minify runs every builtin minify step over source.
func Minify(source string) string {
	out := source
	for _, step := range minifySteps {
		out = step.Apply(out)
	}
	return out
}

// stripComments removes block comments, except /*! ones, then line comments.
func stripComments(s string) string {
	s = blockCommentPattern.ReplaceAllStringFunc(s, func(c string) string {
		if strings.HasPrefix(c, "/*!") {
			return c
		}
		return ""
	})
	return lineCommentPattern.ReplaceAllString(s, "")
}

const indentUnit = "  "

// Beautify re-indents source: a newline follows every {, [, ; and , and
// precedes every } and ], with two spaces per nesting level. Characters inside
// string literals are copied as they are; everything else, including existing
// whitespace, is kept.
func Beautify(source string) string {
	var b strings.Builder
	b.Grow(len(source) * 2)

	indent := 0
	newline := func() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentUnit, indent))
	}

	var quote rune
	escaped := false
	for _, r := range source {
		if quote != 0 {
			b.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		switch r {
		case '"', '\'', '`':
			quote = r
			b.WriteRune(r)
		case '{', '[':
			indent++
			b.WriteRune(r)
			newline()
		case '}', ']':
			if indent > 0 {
				indent--
			}
			newline()
			b.WriteRune(r)
		case ';', ',':
			b.WriteRune(r)
			newline()
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
