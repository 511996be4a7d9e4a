package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable with default settings
// before InitLogger runs, so library packages and tests can log freely.
var Log *logrus.Logger = logrus.New()

func InitLogger(debug bool) {
	Log.Out = os.Stdout

	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		Log.SetLevel(logrus.InfoLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
}

// InitLoggerWithLevel configures the shared logger from a level name
// ("trace", "debug", "info", "warn", "error"). Unknown names fall back
// to info.
func InitLoggerWithLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InitLogger(lvl >= logrus.DebugLevel)
	Log.SetLevel(lvl)
}
