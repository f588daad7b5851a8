// pkg/minify/watch.go

package minify

import (
	"context"
	"os"
	"path/filepath"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// WatchInterval is the minimum gap between two re-minifications. Editors
// often emit several writes per save.
var WatchInterval = 100 * time.Millisecond

// Watch minifies path once, then again after every write or re-create of
// the file, calling emit with each result. Minify errors (such as invalid
// JSON mid-edit) go to onError and watching continues. Watch returns when
// ctx is done.
func Watch(ctx context.Context, path string, format Format, opts Options,
	emit func(*Result) error, onError func(error)) error {
	logger := otelzap.Ctx(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return cerr.Wrap(err, "create file watcher")
	}
	defer func() { _ = w.Close() }()

	// Watch the directory so editors that replace the file are still seen.
	abs, err := filepath.Abs(path)
	if err != nil {
		return cerr.Wrapf(err, "resolve %s", path)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return cerr.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	logger.Info("Watching file for changes", zap.String("path", abs), zap.String("format", string(format)))

	limiter := rate.NewLimiter(rate.Every(WatchInterval), 1)
	run := func() error {
		if err := limiter.Wait(ctx); err != nil {
			// cancelled while waiting
			return nil
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			onError(cerr.Wrapf(err, "read %s", abs))
			return nil
		}
		res, err := Run(format, string(data), opts)
		if err != nil {
			onError(err)
			return nil
		}
		return emit(res)
	}

	if err := run(); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("File changed", zap.String("op", ev.Op.String()))
			if err := run(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
