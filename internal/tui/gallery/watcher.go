package gallery

import (
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/config"
)

// ConfigReloadMsg carries a config re-read after the file changed on disk.
// Warnings lists the values Sanitize had to replace.
type ConfigReloadMsg struct {
	Config   config.Config
	Warnings []config.ValidationWarning
}

// ConfigErrorMsg reports a changed config file that could not be loaded.
// The running config stays in place.
type ConfigErrorMsg struct {
	Err error
}

// ConfigWatcher reloads the config file when it changes. The parent
// directory is watched, since editors often replace the file instead of
// writing to it.
type ConfigWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	log         zerolog.Logger
	debounceDur time.Duration
}

// NewConfigWatcher watches the config file at path.
func NewConfigWatcher(path string, log zerolog.Logger) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &ConfigWatcher{
		watcher:     watcher,
		path:        path,
		log:         log,
		debounceDur: 100 * time.Millisecond,
	}, nil
}

// Start returns a command that blocks until the next change and reports
// the reloaded config. Run it again after each message to keep watching.
func (w *ConfigWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path || event.Has(fsnotify.Chmod) {
					continue
				}

				// Let a burst of writes settle.
				time.Sleep(w.debounceDur)
				drained := false
				for !drained {
					select {
					case <-w.watcher.Events:
					default:
						drained = true
					}
				}

				cfg, err := config.Load(w.path)
				if err != nil {
					w.log.Warn().Err(err).Str("path", w.path).Msg("config reload failed")
					return ConfigErrorMsg{Err: err}
				}
				warnings := cfg.Sanitize(w.log)
				w.log.Info().Str("path", w.path).Msg("config reloaded")
				return ConfigReloadMsg{Config: *cfg, Warnings: warnings}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				w.log.Debug().Err(err).Msg("config watcher error")
			}
		}
	}
}

// Close stops the watcher. A pending Start command returns nil.
func (w *ConfigWatcher) Close() error {
	return w.watcher.Close()
}
