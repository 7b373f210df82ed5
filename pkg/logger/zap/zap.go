package zap

import (
	"os"

	"github.com/lintang-b-s/bipartite-matching/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a console logger on stderr (stdout carries the solver summary), teed into a
// json encoded rotating file when cfg.FilePath is set.
func New(cfg config.Configuration) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}

	if cfg.FilePath != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSize,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAge,
			Compress:   cfg.FileCompress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(fileLogger), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
