package main

import (
	"go.uber.org/zap"
)

// appLogger wraps a zap.SugaredLogger used for diagnostic tracing of
// pipeline stages (§6: "Logging"). It never carries the formula or
// verdict output itself — that always goes through plain fmt/color
// writes to stdout so it stays machine-parseable.
type appLogger struct {
	sugar *zap.SugaredLogger
}

func newAppLogger(verbose bool) (*appLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &appLogger{sugar: logger.Sugar()}, nil
}

func (l *appLogger) stage(name string, detail string) {
	l.sugar.Debugw(name, "detail", detail)
}

func (l *appLogger) internalError(op string, err error) {
	l.sugar.Errorw("internal invariant violation", "op", op, "error", err)
}
