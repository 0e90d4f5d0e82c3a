// Package logging configures the logrus loggers used by both front-ends.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"mazerunner/internal/config"
)

// Setup applies level, formatter and destination from cfg to log. With
// LOG_FILE set, output goes only to a rotating file so a terminal front-end
// keeps the screen to itself.
func Setup(log *logrus.Logger, cfg config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	var formatter logrus.Formatter = &logrus.TextFormatter{ForceColors: true}
	if cfg.LogFormat == "json" {
		formatter = &logrus.JSONFormatter{}
	}
	log.SetFormatter(formatter)

	if cfg.LogFile == "" {
		return nil
	}

	if cfg.LogFormat != "json" {
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Level:      level,
		Formatter:  formatter,
	})
	if err != nil {
		return fmt.Errorf("log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return nil
}

// Run tags every entry of one game session with a fresh run id.
func Run(log *logrus.Logger) *logrus.Entry {
	return log.WithField("run_id", uuid.NewString())
}
