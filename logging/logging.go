// Package logging contains the zap based loggers used across posemath.
package logging

import (
	"io"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go.viam.com/posemath/utils/singleton"
)

// Logger is the logger type handed to every component that logs.
type Logger = *zap.SugaredLogger

var (
	globalMu       sync.RWMutex
	globalOverride Logger
	globalDefault  singleton.Holder[Logger]
)

// ReplaceGlobal replaces the global logger.
func ReplaceGlobal(logger Logger) {
	globalMu.Lock()
	globalOverride = logger
	globalMu.Unlock()
}

// Global returns the global logger. Until ReplaceGlobal is called this is an Info level console
// logger named "posemath", built on first use.
func Global() Logger {
	globalMu.RLock()
	override := globalOverride
	globalMu.RUnlock()
	if override != nil {
		return override
	}
	logger, err := globalDefault.GetOrInit(func() (Logger, error) {
		return NewLogger("posemath"), nil
	})
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger
}

// NewLoggerConfig returns a new default logger config.
func NewLoggerConfig() zap.Config {
	// from https://github.com/uber-go/zap/blob/2314926ec34c23ee21f3dd4399438469668f8097/config.go#L135
	// but disable stacktraces, use same keys as prod, and color levels.
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a new logger that outputs Info+ logs to stdout.
func NewLogger(name string) Logger {
	return newLogger(name, zap.InfoLevel)
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	return newLogger(name, zap.DebugLevel)
}

func newLogger(name string, level zapcore.Level) Logger {
	cfg := NewLoggerConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		// only bad output paths fail here and the config above has none
		panic(err)
	}
	return logger.Sugar().Named(name)
}

// NewWriterLogger returns a logger that writes level+ logs to w with the default console encoding.
func NewWriterLogger(name string, level zapcore.Level, w io.Writer) Logger {
	cfg := NewLoggerConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg.EncoderConfig), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller()).Sugar().Named(name)
}

// NewTestLogger returns a new logger that writes Debug+ logs through tb.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	logger := zaptest.NewLogger(tb,
		zaptest.Level(zapcore.DebugLevel),
		zaptest.WrapOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, observerCore)
		})),
	)
	return logger.Sugar(), observedLogs
}
