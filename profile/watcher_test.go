package profile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaceFile swaps in new content by rename, the way editors and
// atomic writers update files, so a reload never sees partial content.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

// logBuffer records log output written from the watcher goroutine.
type logBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *logBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"-\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	// Let the event loop start before the update lands.
	time.Sleep(50 * time.Millisecond)
	replaceFile(t, path, "separator: \"+\"\n")

	select {
	case p := <-ch:
		assert.Equal(t, "+", p.Separator)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a reload")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 10*time.Millisecond)
}

func TestWatch_SkipsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"-\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	// The broken update is logged and skipped; only the good update
	// that follows is delivered.
	replaceFile(t, path, "blank_class: \"[unclosed\"\n")
	time.Sleep(50 * time.Millisecond)
	replaceFile(t, path, "separator: \"*\"\n")

	select {
	case p := <-ch:
		assert.Equal(t, "*", p.Separator)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a reload")
	}
}

func TestWatch_WithLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"-\"\n"), 0o644))

	var buf logBuffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path, WithLogger(logger))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	replaceFile(t, path, "blank_class: \"[unclosed\"\n")

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "profile reload failed")
	}, 5*time.Second, 10*time.Millisecond)

	// The failed reload was logged instead of delivered.
	select {
	case p := <-ch:
		t.Fatalf("unexpected profile delivery: %+v", p)
	default:
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "profile.yaml"))
	require.Error(t, err)
}
