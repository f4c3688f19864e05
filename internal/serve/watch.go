package serve

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// watchLoop watches the docs directory recursively and triggers a
// rebuild on relevant filesystem events until ctx is cancelled.
func (s *Server) watchLoop(ctx context.Context, trigger func()) error {
	absDocs, err := s.docsDirAbs()
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, absDocs); err != nil {
		return err
	}
	slog.Info("Watching docs directory", logfields.Path(absDocs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// handleFileEvent filters noise and keeps newly created directories
// under watch before triggering a rebuild.
func handleFileEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if shouldIgnoreEvent(path) && path != root {
				return filepath.SkipDir
			}
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for paths that must not trigger
// rebuilds: hidden files, editor swap files and OS metadata.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
