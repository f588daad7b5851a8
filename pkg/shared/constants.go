// pkg/shared/constants.go

package shared

const (
	AppID   = "cyberkit"
	AppName = "CyberKit"

	// EnvPrefix is prepended to every environment variable viper reads.
	EnvPrefix = "CYBERKIT"

	// Directory under $HOME holding config, logs and telemetry state.
	StateDirName   = ".cyberkit"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	LogFileName    = "cyberkit.log"
	LogDirEnv      = "CYBERKIT_LOG_DIR"

	TelemetryToggleFile = "telemetry_on"
	TelemetryDirName    = "telemetry"
	TelemetryFileName   = "telemetry.jsonl"
	TelemetryIDFile     = "telemetry_id"
)

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	SecretDirPerm          = 0700
	FilePermStandard       = 0644
	FilePermOwnerReadWrite = 0600
	SecretFilePerm         = 0600
)

// Version is overridden at build time with -ldflags "-X .../pkg/shared.Version=...".
var Version = "0.1.0-dev"
