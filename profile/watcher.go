package profile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher holds the state of one Watch call.
type watcher struct {
	path   string
	logger *slog.Logger
}

// WatchOption configures a watcher.
type WatchOption func(*watcher)

// WithLogger sets the logger used for reload and watcher failures.
func WithLogger(logger *slog.Logger) WatchOption {
	return func(w *watcher) {
		w.logger = logger
	}
}

// Watch follows the profile file at path and sends successfully
// reloaded profiles on the returned channel. When reloads outpace the
// receiver, only the newest profile is kept. Reload failures are
// logged and watching continues. The channel closes when ctx is
// cancelled or the underlying watcher fails.
func Watch(ctx context.Context, path string, opts ...WatchOption) (<-chan Profile, error) {
	w := &watcher{path: path, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch profile: %w", err)
	}

	// Watch the directory rather than the file, so editors that
	// replace the file do not break the watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch profile: %w", err)
	}

	ch := make(chan Profile, 1)
	go w.run(ctx, fsw, ch)
	return ch, nil
}

// run forwards reloads until the context ends or the watcher dies.
func (w *watcher) run(ctx context.Context, fsw *fsnotify.Watcher, ch chan Profile) {
	defer close(ch)
	defer fsw.Close()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := FromFile(w.path)
			if err != nil {
				w.logger.Warn("profile reload failed", "path", w.path, "error", err)
				continue
			}
			w.logger.Debug("profile reloaded", "path", w.path)

			// Only the newest profile matters; drop any
			// undelivered one. This goroutine is the sole sender,
			// so the send cannot block after the drain.
			select {
			case <-ch:
			default:
			}
			ch <- p

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("profile watcher error", "error", err)
		}
	}
}
