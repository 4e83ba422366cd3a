//go:build property

package watcher

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDebouncerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("flush keeps the last event per path in path order", prop.ForAll(
		func(indexes []int, types []int) bool {
			d := NewDebouncer(time.Hour)
			defer d.stop()

			want := make(map[string]EventType)
			for i, idx := range indexes {
				path := fmt.Sprintf("file-%d.js", idx)
				typ := EventType(types[i%len(types)])
				d.addEvent(ChangeEvent{Path: path, Type: typ})
				want[path] = typ
			}
			d.flush()

			if len(indexes) == 0 {
				select {
				case <-d.Output():
					return false
				default:
					return true
				}
			}

			batch := <-d.Output()
			if len(batch) != len(want) {
				return false
			}
			if !sort.SliceIsSorted(batch, func(i, j int) bool { return batch[i].Path < batch[j].Path }) {
				return false
			}
			for _, event := range batch {
				if want[event.Path] != event.Type {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.SliceOfN(4, gen.IntRange(0, 3)),
	))

	properties.Property("filters compose as a conjunction", prop.ForAll(
		func(name string, ext string) bool {
			path := "src/" + name + ext
			filter := ExtensionFilter(".js", ".html")
			accepted := filter(path) && NoHiddenFilter(path)
			wantExt := ext == ".js" || ext == ".JS" || ext == ".html"
			return accepted == (wantExt && name[0] != '.')
		},
		gen.RegexMatch(`^\.?[a-z]{1,8}$`),
		gen.OneConstOf(".js", ".html", ".css", ".JS", ""),
	))

	properties.TestingRun(t)
}
