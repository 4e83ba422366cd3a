package version

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfoShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"release with commit", Info{Version: "v1.2.0", GitCommit: "0123456789abcdef"}, "v1.2.0 (0123456)"},
		{"release without commit", Info{Version: "v1.2.0", GitCommit: "unknown"}, "v1.2.0"},
		{"dev", Info{Version: "dev-0123456", GitCommit: "0123456789abcdef"}, "dev-0123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc1234",
		BuildTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
		Dirty:     true,
	}

	assert.Equal(t, strings.Join([]string{
		"Version: v1.0.0",
		"Commit: abc1234 (dirty)",
		"Built: 2025-01-02T03:04:05Z",
		"Go: go1.24.4",
		"Platform: linux/amd64",
	}, "\n"), info.String())
}

func TestGet(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	Version = "v0.3.0"
	GitCommit = "feedfacecafe"
	BuildTime = "2025-06-01T10:00:00Z"

	info := Get()
	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "feedfacecafe", info.GitCommit)
	assert.Equal(t, 2025, info.BuildTime.Year())
	assert.True(t, info.IsRelease())
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestParseTime(t *testing.T) {
	assert.True(t, parseTime("unknown").IsZero())
	assert.True(t, parseTime("not a time").IsZero())
	assert.Equal(t, 14, parseTime("2024-03-05 14:00:00").Hour())
}
