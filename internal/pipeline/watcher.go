package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher discovers files in the input directory, both already present and
// newly created, and hands each of them over at most once.
type Watcher struct {
	log            *slog.Logger
	inputDir       string
	rescanInterval time.Duration
	settleDelay    time.Duration
	files          chan<- string
	processed      *ProcessedSet

	// created files waiting for writes to stop, by time of the last event
	pending map[string]time.Time
}

// NewWatcher creates a watcher. A zero rescanInterval disables periodic
// rescans, leaving the startup scan and filesystem notifications. A created
// file is handed over once it has seen no write for settleDelay; zero hands
// it over on creation.
func NewWatcher(
	log *slog.Logger,
	inputDir string,
	rescanInterval time.Duration,
	settleDelay time.Duration,
	files chan<- string,
	processed *ProcessedSet,
) *Watcher {
	return &Watcher{
		log:            log,
		inputDir:       filepath.Clean(inputDir),
		rescanInterval: rescanInterval,
		settleDelay:    settleDelay,
		files:          files,
		processed:      processed,
		pending:        make(map[string]time.Time),
	}
}

// Run blocks until ctx is done or the notification stream breaks. Errors
// returned before the first scan completes are setup failures.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.files)

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create directory watcher: %w", err)
	}
	defer notifier.Close()

	// subscribe before the initial scan so nothing created in between is lost
	if err := notifier.Add(w.inputDir); err != nil {
		return fmt.Errorf("failed to watch directory %q: %w", w.inputDir, err)
	}

	w.log.InfoContext(ctx, "watching directory", slog.String("dir", w.inputDir))

	if err := w.scan(ctx); err != nil {
		return err
	}

	var rescan <-chan time.Time
	if w.rescanInterval > 0 {
		ticker := time.NewTicker(w.rescanInterval)
		defer ticker.Stop()
		rescan = ticker.C
	}

	var settle <-chan time.Time
	if w.settleDelay > 0 {
		ticker := time.NewTicker(max(w.settleDelay/2, time.Millisecond))
		defer ticker.Stop()
		settle = ticker.C
	}

	for {
		select {
		case event, ok := <-notifier.Events:
			if !ok {
				return errors.New("directory watcher events channel closed")
			}

			w.handleEvent(ctx, event)

		case err, ok := <-notifier.Errors:
			if !ok {
				return errors.New("directory watcher errors channel closed")
			}

			w.log.ErrorContext(ctx, "directory watcher error, rescanning", slog.String("err", err.Error()))

			if err := w.scan(ctx); err != nil {
				w.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case now := <-settle:
			w.submitSettled(ctx, now)

		case <-rescan:
			w.log.DebugContext(ctx, "scan cycle started")

			if err := w.scan(ctx); err != nil {
				w.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		w.log.DebugContext(ctx, "file created", slog.String("filename", event.Name))

		if w.settleDelay == 0 {
			w.submit(ctx, event.Name)
			return
		}

		w.pending[event.Name] = time.Now()
		return
	}

	if _, ok := w.pending[event.Name]; !ok {
		return
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		delete(w.pending, event.Name)
	case event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		w.pending[event.Name] = time.Now()
	}
}

func (w *Watcher) submitSettled(ctx context.Context, now time.Time) {
	for path, last := range w.pending {
		if now.Sub(last) < w.settleDelay {
			continue
		}

		delete(w.pending, path)
		w.submit(ctx, path)
	}
}

func (w *Watcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", w.inputDir, err)
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil
		}

		path := filepath.Join(w.inputDir, entry.Name())
		if _, ok := w.pending[path]; ok {
			continue
		}

		w.submit(ctx, path)
	}

	w.log.DebugContext(ctx, "scan completed",
		slog.Int("entries", len(entries)),
		slog.Int("known_files", w.processed.Len()),
	)

	return nil
}

func (w *Watcher) submit(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.log.WarnContext(ctx, "failed to stat file, skipping",
			slog.String("filename", path),
			slog.String("err", err.Error()),
		)
		return
	}

	if !info.Mode().IsRegular() {
		return
	}

	if !w.processed.TestAndSet(path) {
		w.log.DebugContext(ctx, "file already submitted, skipping", slog.String("filename", path))
		return
	}

	select {
	case w.files <- path:
		w.log.DebugContext(ctx, "file submitted", slog.String("filename", path))
	case <-ctx.Done():
	}
}
