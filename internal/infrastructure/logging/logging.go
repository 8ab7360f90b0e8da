package logging

import "go.uber.org/zap"

// NewSugaredLogger builds the process-wide sugared logger. Set LOG_ENV to
// "production" for JSON output; anything else gets the development encoder.
func NewSugaredLogger(env string) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("cannot initialize zap: " + err.Error())
	}
	return logger.Sugar()
}
