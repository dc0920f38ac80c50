package logger

import (
	"io"
	"os"

	"retailpos/internal/config"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Logs go to stderr so command output on
// stdout stays clean.
func New(cfg config.Config) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

func NewWithOutput(cfg config.Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	switch {
	case cfg.LogLevel == "" && cfg.IsDevelopment():
		log.SetLevel(logrus.DebugLevel)
	case cfg.LogLevel == "":
		log.SetLevel(logrus.InfoLevel)
	default:
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.WithField("log_level", cfg.LogLevel).Warn("unknown_log_level_using_info")
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
	}
	return log
}
