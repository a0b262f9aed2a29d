package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL" default:"debug"`
	Sink     string        `envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.AddSync(os.Stdout)
	if cfg.Sink != "" {
		if f, err := os.OpenFile(cfg.Sink, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			sink = zapcore.AddSync(f)
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		sink,
		zap.NewAtomicLevelAt(cfg.LogLevel),
	)

	return zap.New(core, zap.AddCaller()).Named(name)
}
