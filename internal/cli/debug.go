package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// debugEnv enables debug logging when set to a non-empty value.
const debugEnv = "DETECT_INDENT_DEBUG"

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if debug || debugEnabled() {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func debugEnabled() bool {
	return os.Getenv(debugEnv) != ""
}
