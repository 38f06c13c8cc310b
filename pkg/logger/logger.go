// Package logger holds the process-wide zap logger for the collector
// binaries. Init is called once at startup from the resolved logging
// config; everything else logs through Log.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It stays nil until Init succeeds; code that
// can run before startup falls back to zap.NewNop.
var Log *zap.Logger

// Init builds the global logger. With a log file configured the
// production JSON config writes to both the file and stdout, so the
// scheduler's log capture keeps working alongside the file sink.
// Without one the development console config is used.
func Init(level, logFile string) error {
	var cfg zap.Config
	if logFile != "" {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{logFile, "stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.InitialFields = map[string]interface{}{
		"service": "youtube-data-collector",
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = built
	return nil
}

// parseLevel maps the config string to a zap level. Unrecognized
// values fall back to info rather than failing startup.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes buffered entries. Safe to call before Init.
func Sync() error {
	if Log == nil {
		return nil
	}
	return Log.Sync()
}
