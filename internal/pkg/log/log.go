package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Logger is the logging surface consumed by repositories and usecases.
// Handlers keep the raw *otelzap.Logger so they can attach request context
// through Ctx().
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

var global Logger

// Setup builds the otelzap logger used across the service.
func Setup() *otelzap.Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return otelzap.New(z, otelzap.WithMinLevel(zap.InfoLevel))
}

// SetupLogger is an alias kept for wiring symmetry with Init/GetLogger.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

// Init stores the process-wide logger handed out by GetLogger.
func Init(l *otelzap.Logger) {
	global = &logger{z: l}
}

// GetLogger returns the logger registered with Init. It never returns nil;
// when Init has not been called a fresh logger is created.
func GetLogger() Logger {
	if global == nil {
		Init(Setup())
	}
	return global
}

type logger struct {
	z *otelzap.Logger
}

func (l *logger) Info(ctx context.Context, message string, args ...interface{}) {
	l.z.Ctx(ctx).Info(format(message, args...))
}

func (l *logger) Warn(ctx context.Context, message string, args ...interface{}) {
	l.z.Ctx(ctx).Warn(format(message, args...))
}

func (l *logger) Error(ctx context.Context, message string, args ...interface{}) {
	l.z.Ctx(ctx).Error(format(message, args...))
}

func format(message string, args ...interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, args)
}
