package utils

import (
	"go.uber.org/zap"
)

// NewLogger builds a JSON production logger, or a human readable
// development logger for any other environment.
func NewLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return l
}
