package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Debug mode switches to the console
// encoder with debug-level output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	return cfg.Build()
}
