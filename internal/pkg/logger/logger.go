package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger wraps a zap sugared logger with loosely-typed key/value methods.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a logger for the given mode ("prod"/"production" or anything
// else for development output).
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.s.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.s.Fatalw(msg, keysAndValues...)
}

// With returns a child logger with the given key/value pairs attached to
// every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{s: l.s.With(keysAndValues...)}
}
