/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
)

// PlatformLogPaths returns candidate log file paths in order of priority.
func PlatformLogPaths() []string {
	var paths []string
	if dir := os.Getenv(shared.LogDirEnv); dir != "" {
		paths = append(paths, filepath.Join(dir, shared.LogFileName))
	}
	paths = append(paths,
		shared.StatePath("logs", shared.LogFileName),
		filepath.Join(os.TempDir(), shared.AppID, shared.LogFileName),
	)
	return paths
}
