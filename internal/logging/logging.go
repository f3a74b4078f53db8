// Package logging builds the zap loggers used to report queue misuse.
package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// Default builds a logger writing to stderr. Outside of production, as
// determined by the GO_ENVIRONMENT variable, it uses zap's development
// configuration with colored levels.
func Default(opts ...Option) (*zap.Logger, error) {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return logCfg.Build(opts...)
}

// OrNop returns l, or a no-op logger if l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
