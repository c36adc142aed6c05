package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns the logger handed to every component.
func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}
