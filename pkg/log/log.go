package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

type Options struct {
	// Rotated log file, written in addition to stderr when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

func InitProd(opts Options) *zap.Logger {
	return initLogger(zap.NewProductionConfig(), opts)
}

func InitDev(opts Options) *zap.Logger {
	return initLogger(zap.NewDevelopmentConfig(), opts)
}

// Init picks the config by mode: "prod" or anything else for development.
func Init(mode string, opts Options) *zap.Logger {
	if mode == "prod" {
		return InitProd(opts)
	}
	return InitDev(opts)
}

func initLogger(config zap.Config, opts Options) *zap.Logger {
	var err error
	logger, err = config.Build(zap.AddStacktrace(zap.WarnLevel), withFile(config, opts))
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func withFile(config zap.Config, opts Options) zap.Option {
	if opts.File == "" {
		return zap.WrapCore(func(core zapcore.Core) zapcore.Core { return core })
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	})
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), writer, config.Level)

	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})
}

func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
