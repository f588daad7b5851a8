package logger

import (
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	log     *zap.Logger
	initMu  sync.Mutex
	undoFns []func()
)

// L returns the process logger, initialising a console fallback on first use.
func L() *zap.Logger {
	initMu.Lock()
	defer initMu.Unlock()
	if log == nil {
		setGlobal(NewFallbackLogger())
	}
	return log
}

// InitFallback makes sure a logger exists without replacing one that was already built.
func InitFallback() {
	_ = L()
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	initMu.Lock()
	defer initMu.Unlock()
	if log == nil {
		return nil
	}
	if err := log.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

// setGlobal installs l as the zap and otelzap global. Caller holds initMu.
func setGlobal(l *zap.Logger) {
	for _, undo := range undoFns {
		undo()
	}
	log = l
	undoFns = []func(){
		zap.ReplaceGlobals(l),
		otelzap.ReplaceGlobals(otelzap.New(l, otelzap.WithMinLevel(l.Level()))),
	}
}

// Syncing a console-backed logger returns EINVAL/ENOTTY on most platforms.
func isIgnorableSyncError(err error) bool {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Path == "/dev/stderr" || pe.Path == "/dev/stdout"
	}
	return false
}
