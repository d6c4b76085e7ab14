package utils

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// NewLogger builds a development zap logger that prints V-levels up to
// verbosity and installs it as the process-wide logger.
func NewLogger(verbosity int) logr.Logger {
	logger := zap.New(zap.UseDevMode(true), zap.Level(zapcore.Level(-verbosity)))
	ctrllog.SetLogger(logger)
	return logger
}
