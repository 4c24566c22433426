package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Config from disk whenever its source file changes and
// delivers the new value on Changes. The zero value is not usable; call
// WatchFile.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	Changes chan Config
	errs    chan error
}

// WatchFile starts watching path for writes and returns a Watcher whose
// Changes channel receives a freshly reloaded Config after each one.
// Malformed edits are logged and skipped rather than sent, so a transient
// half-written file never propagates a broken Config.
func WatchFile(path string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		fsw:     fsw,
		path:    path,
		Changes: make(chan Config, 1),
		errs:    make(chan error, 1),
	}

	go w.run(logger)
	return w, nil
}

func (w *Watcher) run(logger *slog.Logger) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				logger.Warn("config reload failed", "path", w.path, "error", err)
				continue
			}
			if err := cfg.Validate(); err != nil {
				logger.Warn("config reload produced an invalid config", "path", w.path, "error", err)
				continue
			}
			select {
			case w.Changes <- cfg:
			default:
				// Drop the stale pending value; the newest reload always wins.
				select {
				case <-w.Changes:
				default:
				}
				w.Changes <- cfg
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", "path", w.path, "error", err)
		}
	}
}

// Close stops the watcher and releases its filesystem handle.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
