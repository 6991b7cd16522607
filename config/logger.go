package config

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the rotating file sink.
type LogConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// CreateLogger builds a zap.Logger for the node: a rotating file logger
// when Logger.Path is configured, otherwise a stock zap production or
// development logger.
func (c *Config) CreateLogger(debug bool) (*zap.Logger, io.Closer, error) {
	if c.Logger != nil && c.Logger.Path != "" {
		rotator := &lumberjack.Logger{
			Filename:   c.Logger.Path,
			MaxSize:    c.Logger.MaxSize,
			MaxBackups: c.Logger.MaxBackups,
			MaxAge:     c.Logger.MaxAge,
			Compress:   c.Logger.Compress,
		}

		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(rotator),
			level,
		)
		logger := zap.New(core)
		return logger, rotator, nil
	}

	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	return logger, io.NopCloser(nil), errors.Wrap(err, "create logger")
}
