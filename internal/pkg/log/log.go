package log

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	otel *otelzap.Logger
}

var global Logger

// SetupLogger builds the zap logger. APP_ENV=development switches to the console encoder.
func SetupLogger() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("error build logger: %v", err))
	}
	return l
}

func Init(l *zap.Logger) {
	global = &logger{otel: otelzap.New(l)}
}

func GetLogger() Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

// Setup returns the otelzap logger used by the http layer.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger())
}

// Nop is used by tests.
func Nop() Logger {
	return &logger{otel: otelzap.New(zap.NewNop())}
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Error(msg, toZapFields(fields)...)
}

func toZapFields(fields []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
