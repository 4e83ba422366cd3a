package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.NotNil(t, watcher.logger)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(t.TempDir()))

	err = watcher.AddPath(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	var te *errors.ToolError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, errors.ErrCodeFileNotFound, te.Code)

	err = watcher.AddPath("  ")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestFileWatcherWatchFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.js")
	other := filepath.Join(dir, "other.js")
	require.NoError(t, os.WriteFile(target, []byte("let a = 1;"), 0o644))

	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.WatchFile(target))
	assert.Len(t, watcher.filters, 1)

	var mu sync.Mutex
	var seen []string
	watcher.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			seen = append(seen, filepath.Base(e.Path))
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("let a = 2;"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, name := range seen {
		assert.Equal(t, "app.js", name)
	}
}

func TestFileWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "style.css")
	require.NoError(t, os.WriteFile(target, []byte("a{}"), 0o644))

	watcher, err := NewFileWatcher(200*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()
	require.NoError(t, watcher.AddPath(dir))

	var mu sync.Mutex
	batches := 0
	watcher.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		batches++
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("a{color:red}"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return batches >= 1
	}, 3*time.Second, 20*time.Millisecond)

	time.Sleep(400 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, batches)
}

func TestFileWatcherAddRecursive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))

	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.AddRecursive(root))

	watched := watcher.watcher.WatchList()
	assert.Contains(t, watched, filepath.Join(root, "src", "lib"))
	assert.NotContains(t, watched, filepath.Join(root, ".git"))
}

func TestDebouncerFlush(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.stop()

	d.addEvent(ChangeEvent{Path: "b.js", Type: EventTypeCreated})
	d.addEvent(ChangeEvent{Path: "a.js", Type: EventTypeModified})
	d.addEvent(ChangeEvent{Path: "b.js", Type: EventTypeModified})
	d.flush()

	select {
	case batch := <-d.Output():
		require.Len(t, batch, 2)
		assert.Equal(t, "a.js", batch[0].Path)
		assert.Equal(t, "b.js", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type)
	default:
		t.Fatal("expected a batch")
	}

	d.flush()
	select {
	case <-d.Output():
		t.Fatal("empty flush must not emit")
	default:
	}
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FileFilter
		path   string
		want   bool
	}{
		{"extension match", ExtensionFilter(".js"), "src/app.js", true},
		{"extension case", ExtensionFilter(".html"), "index.HTML", true},
		{"extension miss", ExtensionFilter(".js"), "src/app.ts", false},
		{"hidden", NoHiddenFilter, "src/.app.js.swp", false},
		{"visible", NoHiddenFilter, "src/app.js", true},
		{"backup", NoBackupFilter, "src/app.js~", false},
		{"vendor", NoVendorFilter, "a/vendor/x.js", false},
		{"git", NoGitFilter, ".git/HEAD", false},
		{"not git", NoGitFilter, "src/git.js", true},
		{"path match", PathFilter("dir/../app.js"), "app.js", true},
		{"path miss", PathFilter("app.js"), "other.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter(tt.path))
		})
	}
}

func TestEventTypeOf(t *testing.T) {
	assert.Equal(t, EventTypeCreated, eventTypeOf(fsnotify.Create))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Write))
	assert.Equal(t, EventTypeDeleted, eventTypeOf(fsnotify.Remove))
	assert.Equal(t, EventTypeRenamed, eventTypeOf(fsnotify.Rename))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Chmod))
	assert.Equal(t, EventTypeCreated, eventTypeOf(fsnotify.Create|fsnotify.Write))
}
