package importer

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors a directory and imports every CSV file written into it.
type Watcher struct {
	importer *Importer
	watcher  *fsnotify.Watcher
	logger   zerolog.Logger
}

func NewWatcher(dir string, im *Importer, logger zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{importer: im, watcher: w, logger: logger}, nil
}

// Watch blocks until ctx is cancelled or the underlying watcher closes.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != ".csv" {
				continue
			}
			w.logger.Info().Str("file", event.Name).Msg("catalog file changed")
			if _, err := w.importer.ImportFile(ctx, event.Name); err != nil {
				w.logger.Error().Err(err).Str("file", event.Name).Msg("catalog import failed")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}
