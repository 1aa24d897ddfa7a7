package logger

import (
	"go.uber.org/zap"
)

// NewLogger returns a configured zap logger. "production" selects the JSON
// encoder used in deployments; anything else builds a development logger.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
