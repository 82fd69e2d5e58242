// Package logging builds the zap loggers used by the scanner service.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aiseoaudit/visibility-scanner/internal/config"
)

// serviceName tags every log entry so scan traffic stays attributable when
// logs are shipped alongside other services'.
const serviceName = "visibility-scanner"

// New builds the service logger from the logging config: colored console
// output in development, JSON in production.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	logger, err := buildZapConfig(cfg.Development).Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func buildZapConfig(development bool) zap.Config {
	if development {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.TimeKey = "ts"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.InitialFields = map[string]any{"service": serviceName}
		return zcfg
	}
	zcfg := zap.NewProductionConfig()
	zcfg.DisableStacktrace = false
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.InitialFields = map[string]any{"service": serviceName}
	return zcfg
}
