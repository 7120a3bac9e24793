// Package logger configures the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the global logger. Format "json" produces structured
// production logs; anything else produces human-readable development
// output with colored levels. Logs go to stderr so command output owns
// stdout.
func Init(debug bool, format string) error {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	log = built.Sugar()
	return nil
}

// L returns the global logger.
func L() *zap.SugaredLogger {
	return log
}

// Sync flushes buffered log entries, for use at process exit.
func Sync() {
	_ = log.Sync()
}
