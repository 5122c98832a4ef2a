// Package logger provides the shared logrus setup plus dedicated strategy
// and audit log channels.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger for the given level. An unknown
// level falls back to info rather than failing startup. Production output
// is JSON so log shippers can index fields; everything else gets colored
// text for local reading.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to info", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if os.Getenv("ENVIRONMENT") == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	return log
}
