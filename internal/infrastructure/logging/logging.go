// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: JSON in production, text with
// full timestamps otherwise. An unknown level falls back to info.
func Setup(level string, production bool) {
	configure(logrus.StandardLogger(), os.Stdout, level, production)
}

func configure(l *logrus.Logger, out io.Writer, level string, production bool) {
	l.SetOutput(out)
	if production {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}
