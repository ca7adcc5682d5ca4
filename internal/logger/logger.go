// Package logger builds the application's zap logger from LogConfig.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ledgerly/internal/config"
)

// New creates a zap logger. Format "console" gives the human-readable
// development encoder, anything else JSON. Unknown levels fall back to info.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
