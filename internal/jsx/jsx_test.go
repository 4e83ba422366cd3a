package jsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertAttributesAndVoidTags(t *testing.T) {
	res := Convert(`<div class="a" for="b"><img src="x"></div>`)

	assert.Contains(t, res.Output, `className="a"`)
	assert.Contains(t, res.Output, `htmlFor="b"`)
	assert.Contains(t, res.Output, `<img src="x" />`)
	assert.Equal(t, `<div className="a" htmlFor="b"><img src="x" /></div>`, res.Output)
	assert.Empty(t, res.Warning)
}

func TestConvertStyle(t *testing.T) {
	res := Convert(`<div style="color: red; font-size: 14">x</div>`)
	assert.Contains(t, res.Output, `style={{color: 'red', fontSize: 14}}`)
	assert.Equal(t, `<div style={{color: 'red', fontSize: 14}}>x</div>`, res.Output)
}

func TestConvertEmpty(t *testing.T) {
	assert.Equal(t, Result{}, Convert(""))
	assert.Equal(t, Result{}, Convert("  \n\t"))
}

func TestStyleObject(t *testing.T) {
	testCases := []struct {
		name     string
		css      string
		expected string
	}{
		{"empty", "", "{{}}"},
		{"single", "color: red", "{{color: 'red'}}"},
		{"trailing semicolon", "margin-top: 4px;", "{{marginTop: '4px'}}"},
		{"negative integer", "z-index: -1", "{{zIndex: -1}}"},
		{"decimal stays quoted", "opacity: 0.5", "{{opacity: '0.5'}}"},
		{"vendor prefix", "-webkit-transition: all 1s", "{{WebkitTransition: 'all 1s'}}"},
		{"malformed dropped", "color:; : red; bogus; width: 10", "{{width: 10}}"},
		{"quotes escaped", "content: 'x'", `{{content: '\'x\''}}`},
		{"url with colon", "background: url(http://x/y.png)", "{{background: 'url(http://x/y.png)'}}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StyleObject(tc.css))
		})
	}
}

func TestConvertEmptyStyle(t *testing.T) {
	assert.Equal(t, `<span style={{}}>x</span>`, Convert(`<span style="">x</span>`).Output)
}

func TestCloseVoidTags(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"<br>", "<br />"},
		{"<br/>", "<br/>"},
		{"<br />", "<br />"},
		{`<hr class="x">`, `<hr class="x" />`},
		{`<input type="text" >`, `<input type="text" />`},
		{"<colgroup><col></colgroup>", "<colgroup><col /></colgroup>"},
		{"<b>bold</b>", "<b>bold</b>"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, closeVoidTags(tc.input))
		})
	}
}

func TestConvertBooleanAttributes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"several", `<input type="checkbox" checked disabled>`, `<input type="checkbox" checked={true} disabled={true} />`},
		{"jsx casing", `<input readonly autofocus>`, `<input readOnly={true} autoFocus={true} />`},
		{"select", `<select multiple required></select>`, `<select multiple={true} required={true}></select>`},
		{"valued left alone", `<input disabled="disabled">`, `<input disabled="disabled" />`},
		{"text content", `<p>disabled</p>`, `<p>disabled</p>`},
		{"inside value", `<button title="not disabled">go</button>`, `<button title="not disabled">go</button>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Convert(tc.input).Output)
		})
	}
}

func TestConvertLeavesPrefixedAttributes(t *testing.T) {
	res := Convert(`<a data-class="x" aria-for="y">z</a>`)
	assert.Equal(t, `<a data-class="x" aria-for="y">z</a>`, res.Output)
}

func TestNestingWarning(t *testing.T) {
	testCases := []struct {
		name string
		html string
		warn bool
	}{
		{"div in p", "<p>text<div>block</div></p>", true},
		{"p with attributes", "<p class=\"lead\">\n  <div>x</div>\n</p>", true},
		{"siblings", "<p>a</p><div>b</div>", false},
		{"pre is not p", "<pre><div>x</div></pre>", false},
		{"nearest close wins", "<p>a</p><p>b</p><div>c</div>", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Convert(tc.html)
			if tc.warn {
				assert.Equal(t, NestingWarning, res.Warning)
			} else {
				assert.Empty(t, res.Warning)
			}
		})
	}
}

func TestPipelineRecoversFromPanickingStep(t *testing.T) {
	pipeline := Pipeline{
		{Name: "upper", Apply: strings.ToUpper},
		{Name: "boom", Apply: func(string) string { panic("bad step") }},
		{Name: "never", Apply: func(string) string { return "unreachable" }},
	}

	res := pipeline.Convert("<a>")
	assert.Equal(t, "<A>", res.Output)
	require.True(t, strings.HasPrefix(res.Warning, ConversionErrorPrefix))
	assert.Contains(t, res.Warning, `"boom"`)
	assert.Contains(t, res.Warning, "bad step")
}

func TestStepsOrderAndCopy(t *testing.T) {
	steps := Steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"class", "for", "style", "self-closing", "boolean-attributes"}, names)

	steps[0] = Step{Name: "replaced", Apply: func(s string) string { return s }}
	assert.Equal(t, "class", Steps()[0].Name)
}

func TestStepsRunIndependently(t *testing.T) {
	steps := Steps()
	assert.Equal(t, `<label htmlFor="x">`, steps[1].Apply(`<label for="x">`))
	assert.Equal(t, `<p className="x">`, steps[0].Apply(`<p class="x">`))
}
