package util

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	appLogger *logrus.Logger
	logOnce   sync.Once
)

// Logger returns the shared JSON logger. Level comes from LOG_LEVEL and
// defaults to info.
func Logger() *logrus.Logger {
	logOnce.Do(func() {
		l := logrus.New()
		l.SetOutput(os.Stdout)
		l.SetFormatter(&logrus.JSONFormatter{})

		switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
		case "trace":
			l.SetLevel(logrus.TraceLevel)
		case "debug":
			l.SetLevel(logrus.DebugLevel)
		case "warn", "warning":
			l.SetLevel(logrus.WarnLevel)
		case "error":
			l.SetLevel(logrus.ErrorLevel)
		default:
			l.SetLevel(logrus.InfoLevel)
		}
		appLogger = l
	})
	return appLogger
}
