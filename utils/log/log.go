package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

const serviceName = "food-swipe-api"

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Packages log through Log before main has configured anything, tests
// included, so a usable default is set up at init.
func init() {
	InitLogger("info", false)
}

// InitLogger (re)configures the global logger. Production output is JSON,
// development output stays human readable on stderr.
func InitLogger(level string, production bool) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log = logger.WithFields(logrus.Fields{"service": serviceName, "is_development": !production})
	if err != nil {
		Log.WithField("level", level).Warn("unknown log level, falling back to info")
	}
}
