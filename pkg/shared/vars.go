// pkg/shared/vars.go

package shared

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	ErrNotTTY     = errors.New("cannot prompt: not a TTY")
	syncedAlready atomic.Bool
)

// StateDir returns ~/.cyberkit, falling back to ./.cyberkit when HOME is unset.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return StateDirName
	}
	return filepath.Join(home, StateDirName)
}

// StatePath joins elem onto StateDir.
func StatePath(elem ...string) string {
	return filepath.Join(append([]string{StateDir()}, elem...)...)
}

// SafeSync flushes the global zap logger once per process.
func SafeSync() {
	if syncedAlready.Swap(true) {
		return
	}
	_ = zap.L().Sync()
}
