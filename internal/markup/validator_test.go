package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Message
	}
	return out
}

func errorsOnly(issues []Issue) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidateWellFormed(t *testing.T) {
	issues := Validate("<div><span></span></div>")
	assert.Empty(t, issues)
	assert.NotNil(t, issues)
}

func TestValidateUnclosed(t *testing.T) {
	issues := Validate("<div>")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "Unclosed tag: div")
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 1, issues[0].Column)
}

func TestValidateMismatched(t *testing.T) {
	issues := Validate("<div><span></div>")

	var mismatched []Issue
	for _, issue := range issues {
		if strings.Contains(issue.Message, "Mismatched closing tag") {
			mismatched = append(mismatched, issue)
		}
	}
	require.Len(t, mismatched, 1)
	assert.Equal(t, SeverityError, mismatched[0].Severity)
	assert.Equal(t, "Mismatched closing tag: expected span, found div", mismatched[0].Message)
	assert.Equal(t, 12, mismatched[0].Column)

	// The stack is left as it was, so both tags are still reported open.
	assert.Equal(t, []string{
		"Mismatched closing tag: expected span, found div",
		"Unclosed tag: div",
		"Unclosed tag: span",
	}, messages(issues))
}

func TestValidateUnexpectedClosing(t *testing.T) {
	issues := Validate("text\n  </p>")
	require.Len(t, issues, 1)
	assert.Equal(t, Issue{Line: 2, Column: 3, Message: "Unexpected closing tag: p", Severity: SeverityError}, issues[0])
}

func TestValidateUnclosedPinnedToLastLine(t *testing.T) {
	issues := Validate("<section>\n<p>one</p>\n\nend")
	require.Len(t, issues, 1)
	assert.Equal(t, 4, issues[0].Line)
	assert.Equal(t, 1, issues[0].Column)
}

func TestValidateSkipsSelfClosingAndComments(t *testing.T) {
	testCases := []struct {
		name string
		html string
	}{
		{"void elements", `<p>a<br>b<hr><input type="text"><img src="x" alt="y"></p>`},
		{"explicit self closing", `<div><my-widget /></div>`},
		{"uppercase", `<DIV><Span></SPAN></div>`},
		{"comments", `<div><!-- <span> --></div>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Validate(tc.html))
		})
	}
}

func TestValidateDoctype(t *testing.T) {
	issues := Validate("<html>\n<body></body>\n</html>")
	require.Len(t, issues, 1)
	assert.Equal(t, Issue{Line: 1, Column: 1, Message: "Missing <!DOCTYPE html> declaration", Severity: SeverityWarning}, issues[0])

	assert.Empty(t, Validate("<!DOCTYPE html>\n<html lang=\"en\">\n</html>"))
	assert.Empty(t, Validate("<!doctype html><html></html>"))
}

func TestValidateDeprecated(t *testing.T) {
	issues := Validate("<center>hi</center>\n<p><font size=\"2\">x</font> <font>y</font></p>\n<section></section>")
	require.Len(t, issues, 2)

	assert.Equal(t, Issue{Line: 1, Column: 1, Message: "Deprecated tag: center", Severity: SeverityWarning}, issues[0])
	assert.Equal(t, Issue{Line: 2, Column: 4, Message: "Deprecated tag: font", Severity: SeverityWarning}, issues[1])
}

func TestValidateDeprecatedNeedsBoundary(t *testing.T) {
	// <section>, <span>, <summary> start with deprecated names but are fine.
	assert.Empty(t, Validate("<section><span></span><summary></summary></section>"))

	issues := Validate("<s>gone</s>")
	require.Len(t, issues, 1)
	assert.Equal(t, "Deprecated tag: s", issues[0].Message)
}

func TestValidateMissingAlt(t *testing.T) {
	issues := Validate(`<img src="a.png"> <img src="b.png" alt="b"> <IMG SRC="c.png">`)
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Column)
	assert.Equal(t, 45, issues[1].Column)
	for _, issue := range issues {
		assert.Equal(t, SeverityWarning, issue.Severity)
		assert.Equal(t, "Image is missing an alt attribute", issue.Message)
	}
}

func TestValidatePassOrder(t *testing.T) {
	html := "<html>\n<center><img src=\"x\"></center>\n<div>"
	issues := Validate(html)

	assert.Equal(t, []string{
		"Missing <!DOCTYPE html> declaration",
		"Unclosed tag: html",
		"Unclosed tag: div",
		"Deprecated tag: center",
		"Image is missing an alt attribute",
	}, messages(issues))
	assert.Len(t, errorsOnly(issues), 2)
}

func TestValidateIsolatedCalls(t *testing.T) {
	_ = Validate("<div><div><div>")
	assert.Empty(t, Validate("<p></p>"))
}

func TestRunPassRecoversPanic(t *testing.T) {
	boom := func([]string, []Issue) []Issue { panic("boom") }

	_, err := runPass(boom, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSummarize(t *testing.T) {
	issues := Validate("<html>\n<img src=\"x\">\n<div>")
	summary := Summarize(issues)

	assert.Equal(t, Summary{Errors: 2, Warnings: 2}, summary)
	assert.False(t, Valid(issues))
	assert.True(t, Valid(Validate("<center></center>")))
}

func TestIssueString(t *testing.T) {
	issue := Issue{Line: 3, Column: 7, Message: "Unclosed tag: div", Severity: SeverityError}
	assert.Equal(t, "3:7: error: Unclosed tag: div", issue.String())
}
