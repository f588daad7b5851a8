/* pkg/logger/fallback.go */

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFallbackLogger logs to stderr only. Stdout is reserved for command output.
func NewFallbackLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel(),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// InitializeWithFallback builds a console + JSON file tee. Without a writable
// log path it degrades to console only.
func InitializeWithFallback() {
	path, writer, err := FindWritableLogPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  No writable log path found. Logging to console only.")
		initMu.Lock()
		setGlobal(NewFallbackLogger())
		initMu.Unlock()
		return
	}

	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	fileLevel := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if fileLevel > zapcore.InfoLevel {
		fileLevel = zapcore.InfoLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()), zapcore.Lock(os.Stderr), consoleLevel()),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, fileLevel),
	)

	l := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	initMu.Lock()
	setGlobal(l)
	initMu.Unlock()

	l.Debug("Logger initialized",
		zap.String("log_level", os.Getenv("LOG_LEVEL")),
		zap.String("log_path", path),
	)
}

// DefaultConsoleEncoderConfig is the short-key coloured console layout.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// The console stays quiet (warnings and up) unless LOG_LEVEL asks for more.
func consoleLevel() zapcore.Level {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		return ParseLogLevel(v)
	}
	return zapcore.WarnLevel
}
