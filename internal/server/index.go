package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/version"
)

// indexPage lists every tool grouped by category, with a form per tool that
// posts to the JSON API.
func indexPage(list []*tools.Tool, ver string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>onestop</title>
<style>
body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:60rem;padding:0 1rem}
section{border-top:1px solid #ddd;padding:.5rem 0}
textarea{width:100%;min-height:6rem;font-family:monospace}
pre{background:#f6f6f6;padding:.5rem;white-space:pre-wrap}
</style>
</head>
<body>
<h1>onestop</h1>
`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "<p>Version %s. Live channel at <code>/ws</code>.</p>\n", templ.EscapeString(ver)); err != nil {
			return err
		}

		category := ""
		for _, t := range list {
			if t.Category != category {
				category = t.Category
				if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", templ.EscapeString(category)); err != nil {
					return err
				}
			}
			if err := toolSection(t).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, indexScript+"</body>\n</html>\n")
		return err
	})
}

func toolSection(t *tools.Tool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(t.Name)
		_, err := fmt.Fprintf(w, `<section id="tool-%s">
<h3>%s</h3>
<p>%s</p>
<form data-tool="%s"><textarea name="input"></textarea><button type="submit">Run</button></form>
<pre class="output"></pre>
</section>
`, name, name, templ.EscapeString(t.Description), name)
		return err
	})
}

const indexScript = `<script>
document.querySelectorAll("form[data-tool]").forEach(function (form) {
  form.addEventListener("submit", async function (ev) {
    ev.preventDefault();
    var out = form.parentElement.querySelector(".output");
    var res = await fetch("/api/tools/" + form.dataset.tool, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({input: form.input.value})
    });
    var body = await res.json();
    out.textContent = body.error ? body.error.message : body.output;
  });
});
</script>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(indexPage(s.registry.List(), version.Get().Short())).ServeHTTP(w, r)
}
