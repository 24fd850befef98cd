package bitxor

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oddbits/bitkit/shared"
)

func newLogger(levelName string) (shared.Logger, error) {
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

// zapLogger adapts a zap sugared logger to shared.Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Info(format string, args ...any)    { l.sugar.Infof(format, args...) }
func (l *zapLogger) Debug(format string, args ...any)   { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Warning(format string, args ...any) { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Error(format string, args ...any)   { l.sugar.Errorf(format, args...) }
