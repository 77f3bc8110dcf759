package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ParamsNewLogger struct {
	Level        string
	IsProduction bool
}

// NewLogger builds a JSON logger for production, colored console otherwise.
func NewLogger(params *ParamsNewLogger) (*zap.Logger, error) {
	var cfg zap.Config

	if params.IsProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if len(params.Level) > 0 {
		level, errParse := zapcore.ParseLevel(params.Level)
		if errParse != nil {
			return nil,
				fmt.Errorf("log level %q: %w", params.Level, errParse)
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	return cfg.Build()
}
