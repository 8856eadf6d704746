package logger

import (
	"os"

	"quiz-seed/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Initialize sets up the logger with the given configuration
func Initialize(loggerCfg config.LoggerConfig) error {
	log = zap.New(newCore(loggerCfg, zapcore.AddSync(os.Stdout)), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

func newCore(loggerCfg config.LoggerConfig, out zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	logLevel := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(loggerCfg.Level); err == nil {
		logLevel = lvl
	}

	if loggerCfg.Env == "production" {
		return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, logLevel)
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), out, logLevel)
}

// Get returns the global logger instance
func Get() *zap.Logger {
	return log
}

// Sync flushes any buffered log entries
func Sync() error {
	return log.Sync()
}
