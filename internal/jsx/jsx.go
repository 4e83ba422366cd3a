// Package jsx rewrites HTML snippets into JSX with an ordered list of regex
// substitutions. Each Step is a pure string transformation that can be run
// and tested on its own; Convert runs them in the order returned by Steps.
//
// This is a best-effort converter. It does not parse HTML, so markup that
// hides a '>' inside an attribute value or spreads a tag over unusual
// quoting can come out wrong.
package jsx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// NestingWarning is reported when a <div> appears inside a <p>.
const NestingWarning = "Possible invalid nesting: <div> found inside <p>. React will warn about this at runtime."

// ConversionErrorPrefix starts the warning set when a step fails.
const ConversionErrorPrefix = "Error converting HTML to JSX"

// Result is the outcome of a conversion. Warning is empty when nothing was
// flagged.
type Result struct {
	Output  string `json:"output" yaml:"output"`
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Step is one stage of the rewrite pipeline.
type Step struct {
	Name  string
	Apply func(string) string
}

// Pipeline is an ordered list of steps.
type Pipeline []Step

// SelfClosingTags are rewritten to <tag ... />.
var SelfClosingTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input", "link",
	"meta", "param", "source", "track", "wbr",
}

// BooleanAttributes maps lowercased HTML boolean attribute names to their
// JSX spelling.
var BooleanAttributes = map[string]string{
	"disabled":  "disabled",
	"checked":   "checked",
	"readonly":  "readOnly",
	"required":  "required",
	"autofocus": "autoFocus",
	"multiple":  "multiple",
}

var (
	classPattern     = regexp.MustCompile(`(\s)class=`)
	forPattern       = regexp.MustCompile(`(\s)for=`)
	stylePattern     = regexp.MustCompile(`(\s)style="([^"]*)"`)
	integerPattern   = regexp.MustCompile(`^-?\d+$`)
	selfClosingRegex = regexp.MustCompile(`<(` + strings.Join(SelfClosingTags, "|") + `)((?:\s|/)[^>]*)?>`)
	openTagPattern   = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9-]*(\s[^>]*)?>`)
	attributePattern = regexp.MustCompile(`(\s+)([^\s=/>]+)(\s*=\s*(?:\{\{.*?\}\}|"[^"]*"|'[^']*'|\{[^}]*\}|[^\s>]+))?`)
	paragraphPattern = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>(.*?)</p>`)
	divOpenPattern   = regexp.MustCompile(`(?i)<div[\s>/]`)
)

var defaultPipeline = Pipeline{
	{Name: "class", Apply: renameClass},
	{Name: "for", Apply: renameFor},
	{Name: "style", Apply: convertStyles},
	{Name: "self-closing", Apply: closeVoidTags},
	{Name: "boolean-attributes", Apply: expandBooleanAttributes},
}

// Steps returns a copy of the default pipeline in execution order.
func Steps() Pipeline {
	out := make(Pipeline, len(defaultPipeline))
	copy(out, defaultPipeline)
	return out
}

// Convert rewrites html with the default pipeline.
func Convert(html string) Result {
	return defaultPipeline.Convert(html)
}

// Convert runs every step over html in order and then checks the output for
// a <div> nested in a <p>. Whitespace-only input yields the zero Result.
//
// A step that panics stops the pipeline: the Result carries the output of the
// last step that completed and a warning starting with ConversionErrorPrefix.
func (p Pipeline) Convert(html string) Result {
	if strings.TrimSpace(html) == "" {
		return Result{}
	}

	out := html
	for _, step := range p {
		next, err := applyStep(step, out)
		if err != nil {
			return Result{
				Output:  out,
				Warning: fmt.Sprintf("%s (step %q): %s", ConversionErrorPrefix, step.Name, errors.FormatError(errors.ExtractCause(err))),
			}
		}
		out = next
	}

	res := Result{Output: out}
	if HasNestingViolation(out) {
		res.Warning = NestingWarning
	}
	return res
}

func applyStep(step Step, in string) (out string, err error) {
	defer errors.Recover("html-to-jsx", &err)
	return step.Apply(in), nil
}

// HasNestingViolation reports whether some <p> element contains a <div>
// before its first closing </p>. Expect false positives: the match is
// textual and the closing tag found is the nearest one.
func HasNestingViolation(html string) bool {
	for _, m := range paragraphPattern.FindAllStringSubmatch(html, -1) {
		if divOpenPattern.MatchString(m[1]) {
			return true
		}
	}
	return false
}

func renameClass(s string) string {
	return classPattern.ReplaceAllString(s, "${1}className=")
}

func renameFor(s string) string {
	return forPattern.ReplaceAllString(s, "${1}htmlFor=")
}

func convertStyles(s string) string {
	return replaceSubmatches(stylePattern, s, func(groups []string) string {
		return groups[1] + "style=" + StyleObject(groups[2])
	})
}

// StyleObject turns a CSS declaration list into a JSX style object literal,
// e.g. "color: red; font-size: 14" becomes {{color: 'red', fontSize: 14}}.
// Declarations without a property or a value are dropped.
func StyleObject(css string) string {
	var props []string
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		props = append(props, camelCase(name)+": "+styleValue(value))
	}
	return "{{" + strings.Join(props, ", ") + "}}"
}

func styleValue(v string) string {
	if integerPattern.MatchString(v) {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
}

// camelCase converts a kebab-case CSS property. A vendor prefix such as
// -webkit- becomes Webkit, matching React's naming.
func camelCase(prop string) string {
	parts := strings.Split(strings.ToLower(prop), "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func closeVoidTags(s string) string {
	return replaceSubmatches(selfClosingRegex, s, func(groups []string) string {
		attrs := strings.TrimRight(groups[2], " \t\r\n")
		if strings.HasSuffix(attrs, "/") {
			return groups[0]
		}
		return "<" + groups[1] + attrs + " />"
	})
}

func expandBooleanAttributes(s string) string {
	return openTagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		return replaceSubmatches(attributePattern, tag, func(groups []string) string {
			if groups[3] != "" {
				return groups[0]
			}
			jsxName, ok := BooleanAttributes[strings.ToLower(groups[2])]
			if !ok {
				return groups[0]
			}
			return groups[1] + jsxName + "={true}"
		})
	})
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
// Groups that did not participate in the match are empty strings.
func replaceSubmatches(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
