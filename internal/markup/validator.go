// Package markup checks HTML source for structural problems with a
// line-oriented, regex-driven scan. It is a heuristic linter, not an HTML
// parser: tags that span several lines are not seen, and a mismatched
// closing tag leaves the open-tag stack untouched, so one mistake in deeply
// nested markup can be reported more than once.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Severity of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding. Line and Column are 1-based; both
// are 0 for the issue reported when validation itself fails.
type Issue struct {
	Line     int      `json:"line" yaml:"line"`
	Column   int      `json:"column" yaml:"column"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// String formats the issue as "line:column: severity: message".
func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", i.Line, i.Column, i.Severity, i.Message)
}

// SelfClosingTags never take a closing tag.
var SelfClosingTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// DeprecatedTags are elements removed from or obsolete in HTML5.
var DeprecatedTags = []string{
	"applet", "basefont", "center", "dir", "font", "isindex", "menu",
	"strike", "s", "u", "frame", "frameset", "noframes", "acronym", "big", "tt",
}

var (
	tagPattern      = regexp.MustCompile(`<!--.*?-->|<(/?)([a-zA-Z][a-zA-Z0-9-]*)[^>]*>`)
	imgPattern      = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	doctypePattern  = regexp.MustCompile(`(?i)<!doctype\s+html\s*>`)
	htmlTagPattern  = regexp.MustCompile(`(?i)<html[\s>]`)
	deprecatedRules = compileDeprecated()
)

type deprecatedRule struct {
	name    string
	pattern *regexp.Regexp
}

func compileDeprecated() []deprecatedRule {
	rules := make([]deprecatedRule, 0, len(DeprecatedTags))
	for _, name := range DeprecatedTags {
		rules = append(rules, deprecatedRule{
			name:    name,
			pattern: regexp.MustCompile(`(?i)<` + name + `(\s|>)`),
		})
	}
	return rules
}

// pass is one independent scan over the document.
type pass func(lines []string, issues []Issue) []Issue

// Validate reports structural issues in html. An empty result means the
// document passed every check.
//
// Passes run in a fixed order and each appends in line order:
//
//  1. doctype: a missing <!DOCTYPE html> in a full document (one that has an
//     <html> tag) is a warning at 1:1.
//  2. structure: open/close tag matching, then "Unclosed tag" errors pinned
//     to the last line for whatever is left on the stack.
//  3. deprecated: one warning per deprecated tag per line.
//  4. alt: one warning per <img> tag without an alt attribute.
func Validate(html string) []Issue {
	lines := strings.Split(html, "\n")

	issues := make([]Issue, 0)
	for _, p := range []pass{checkDoctype(html), checkStructure, checkDeprecated, checkAlt} {
		var err error
		issues, err = runPass(p, lines, issues)
		if err != nil {
			return []Issue{{
				Line:     0,
				Column:   0,
				Message:  "Validation failed: " + errors.FormatError(err),
				Severity: SeverityError,
			}}
		}
	}
	return issues
}

func runPass(p pass, lines []string, issues []Issue) (out []Issue, err error) {
	defer errors.Recover("validate-html", &err)
	return p(lines, issues), nil
}

func checkDoctype(html string) pass {
	return func(_ []string, issues []Issue) []Issue {
		if !htmlTagPattern.MatchString(html) || doctypePattern.MatchString(html) {
			return issues
		}
		return append(issues, Issue{
			Line:     1,
			Column:   1,
			Message:  "Missing <!DOCTYPE html> declaration",
			Severity: SeverityWarning,
		})
	}
}

func checkStructure(lines []string, issues []Issue) []Issue {
	stack := make([]string, 0, 16)

	for i, line := range lines {
		lineNum := i + 1
		for _, loc := range tagPattern.FindAllStringSubmatchIndex(line, -1) {
			token := line[loc[0]:loc[1]]
			if strings.HasPrefix(token, "<!--") || strings.HasSuffix(token, "-->") {
				continue
			}

			closing := loc[3] > loc[2]
			name := strings.ToLower(line[loc[4]:loc[5]])
			column := loc[0] + 1

			if strings.HasSuffix(token, "/>") || SelfClosingTags[name] {
				continue
			}

			if !closing {
				stack = append(stack, name)
				continue
			}

			switch {
			case len(stack) == 0:
				issues = append(issues, Issue{
					Line:     lineNum,
					Column:   column,
					Message:  fmt.Sprintf("Unexpected closing tag: %s", name),
					Severity: SeverityError,
				})
			case stack[len(stack)-1] != name:
				issues = append(issues, Issue{
					Line:     lineNum,
					Column:   column,
					Message:  fmt.Sprintf("Mismatched closing tag: expected %s, found %s", stack[len(stack)-1], name),
					Severity: SeverityError,
				})
			default:
				stack = stack[:len(stack)-1]
			}
		}
	}

	lastLine := len(lines)
	for _, name := range stack {
		issues = append(issues, Issue{
			Line:     lastLine,
			Column:   1,
			Message:  fmt.Sprintf("Unclosed tag: %s", name),
			Severity: SeverityError,
		})
	}

	return issues
}

func checkDeprecated(lines []string, issues []Issue) []Issue {
	for i, line := range lines {
		for _, rule := range deprecatedRules {
			loc := rule.pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   loc[0] + 1,
				Message:  fmt.Sprintf("Deprecated tag: %s", rule.name),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

func checkAlt(lines []string, issues []Issue) []Issue {
	for i, line := range lines {
		for _, loc := range imgPattern.FindAllStringIndex(line, -1) {
			if strings.Contains(strings.ToLower(line[loc[0]:loc[1]]), "alt=") {
				continue
			}
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   loc[0] + 1,
				Message:  "Image is missing an alt attribute",
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

// Summary counts issues by severity.
type Summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// Summarize counts errors and warnings in issues.
func Summarize(issues []Issue) Summary {
	var s Summary
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
	}
	return s
}

// Valid reports whether issues contains no error-severity entries.
func Valid(issues []Issue) bool {
	return Summarize(issues).Errors == 0
}
