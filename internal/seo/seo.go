// Package seo scores an HTML page against a fixed list of on-page search
// engine checks. The score is a heuristic: it looks only at the markup it is
// given and knows nothing about content quality or links to the page.
package seo

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Length bounds, in characters, for the title and meta description.
const (
	MinTitleLength       = 30
	MaxTitleLength       = 60
	MinDescriptionLength = 120
	MaxDescriptionLength = 160

	wordsPerMinute = 200
)

// Check IDs.
const (
	CheckTitle       = "title"
	CheckDescription = "meta-description"
	CheckH1          = "single-h1"
	CheckImageAlt    = "image-alt"
	CheckLang        = "html-lang"
	CheckViewport    = "viewport"
	CheckCanonical   = "canonical"
	CheckOpenGraph   = "og-title"
)

// Check is the outcome of one rule. Weight is what the rule contributes to
// the score when it passes; the weights of all rules add up to 100.
type Check struct {
	ID      string `json:"id" yaml:"id"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Weight  int    `json:"weight" yaml:"weight"`
	Message string `json:"message" yaml:"message"`
}

// Report is the result of Analyze.
type Report struct {
	Score          int     `json:"score" yaml:"score"`
	Checks         []Check `json:"checks" yaml:"checks"`
	Title          string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	WordCount      int     `json:"word_count" yaml:"word_count"`
	ReadingMinutes float64 `json:"reading_minutes" yaml:"reading_minutes"`
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

type rule struct {
	id     string
	weight int
	eval   func(doc *goquery.Document) (bool, string)
}

var rules = []rule{
	{CheckTitle, 15, checkTitle},
	{CheckDescription, 15, checkDescription},
	{CheckH1, 15, checkH1},
	{CheckImageAlt, 15, checkImageAlt},
	{CheckLang, 10, checkLang},
	{CheckViewport, 10, checkViewport},
	{CheckCanonical, 10, checkCanonical},
	{CheckOpenGraph, 10, checkOpenGraph},
}

// Analyze parses html and runs every check in a fixed order.
func Analyze(html string) (*Report, error) {
	if strings.TrimSpace(html) == "" {
		return nil, errors.NewInvalidInput(errors.ErrCodeEmptyInput, "no HTML to analyze")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInvalidInput, errors.ErrCodeInvalidArgument, "cannot parse HTML")
	}

	report := &Report{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: metaContent(doc, `meta[name="description"]`),
	}

	for _, r := range rules {
		passed, msg := r.eval(doc)
		report.Checks = append(report.Checks, Check{ID: r.id, Passed: passed, Weight: r.weight, Message: msg})
		if passed {
			report.Score += r.weight
		}
	}

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript").Remove()
	report.WordCount = len(strings.Fields(body.Text()))
	report.ReadingMinutes = math.Round(float64(report.WordCount)/wordsPerMinute*10) / 10

	return report, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

func lengthCheck(what, value string, min, max int) (bool, string) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return false, fmt.Sprintf("Missing %s", what)
	case n < min:
		return false, fmt.Sprintf("%s is too short (%d characters, aim for %d-%d)", capitalize(what), n, min, max)
	case n > max:
		return false, fmt.Sprintf("%s is too long (%d characters, aim for %d-%d)", capitalize(what), n, min, max)
	default:
		return true, fmt.Sprintf("%s length is good (%d characters)", capitalize(what), n)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func checkTitle(doc *goquery.Document) (bool, string) {
	return lengthCheck("title", strings.TrimSpace(doc.Find("title").First().Text()), MinTitleLength, MaxTitleLength)
}

func checkDescription(doc *goquery.Document) (bool, string) {
	return lengthCheck("meta description", metaContent(doc, `meta[name="description"]`), MinDescriptionLength, MaxDescriptionLength)
}

func checkH1(doc *goquery.Document) (bool, string) {
	switch n := doc.Find("h1").Length(); n {
	case 0:
		return false, "No <h1> heading"
	case 1:
		return true, "Exactly one <h1> heading"
	default:
		return false, fmt.Sprintf("%d <h1> headings, use exactly one", n)
	}
}

func checkImageAlt(doc *goquery.Document) (bool, string) {
	images := doc.Find("img")
	missing := 0
	images.Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			missing++
		}
	})
	if missing > 0 {
		return false, fmt.Sprintf("%d of %d images have no alt text", missing, images.Length())
	}
	return true, fmt.Sprintf("All %d images have alt text", images.Length())
}

func checkLang(doc *goquery.Document) (bool, string) {
	if lang, ok := doc.Find("html").First().Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		return true, fmt.Sprintf("Page language is %s", strings.TrimSpace(lang))
	}
	return false, "The <html> element has no lang attribute"
}

func checkViewport(doc *goquery.Document) (bool, string) {
	if metaContent(doc, `meta[name="viewport"]`) != "" {
		return true, "Viewport meta tag present"
	}
	return false, "Missing viewport meta tag"
}

func checkCanonical(doc *goquery.Document) (bool, string) {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return true, "Canonical URL is " + strings.TrimSpace(href)
	}
	return false, "Missing canonical link"
}

func checkOpenGraph(doc *goquery.Document) (bool, string) {
	if metaContent(doc, `meta[property="og:title"]`) != "" {
		return true, "Open Graph title present"
	}
	return false, "Missing og:title meta tag"
}
