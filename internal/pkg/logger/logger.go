// Package logger builds the zap logger shared by the service entry points.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envDevelopment = "development"

// New returns a JSON production logger, or a colored console logger when env is "development".
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == envDevelopment {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", "purchasing")), nil
}
