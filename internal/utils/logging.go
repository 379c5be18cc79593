package utils

import (
	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets the global logrus level and formatter.
// Unknown levels fall back to info; format "json" selects the JSON formatter.
func ConfigureLogging(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
