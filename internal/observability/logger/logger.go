package logger

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/homelife/backoffice/internal/config"
)

// NewLogger builds the process logger. Production gets JSON output;
// everything else gets the development console encoder.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.LogLevel))

	log, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// FromContext returns the global logger enriched with the active trace and
// span identifiers when the context carries a sampled span.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	if ctx == nil {
		return log
	}
	span := trace.SpanContextFromContext(ctx)
	if span.IsValid() {
		log = log.With(
			zap.String("trace_id", span.TraceID().String()),
			zap.String("span_id", span.SpanID().String()),
		)
	}
	return log
}

func sync(log *zap.Logger) {
	_ = log.Sync()
}

// Module provides the process logger and flushes it on shutdown.
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
	fx.Invoke(func(lc fx.Lifecycle, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				sync(log)
				return nil
			},
		})
	}),
)
