// Package logging routes the process logger to a rotating file. The terminal
// belongs to the TUI, so nothing is written to stdout or stderr once Setup ran.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"vlist/internal/config"
)

// Setup builds a logger for settings, installs it as the default and returns
// it together with the closer of the underlying file.
func Setup(settings config.LogSettings, debug bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if settings.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(settings.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		level = parsed
	}
	if debug {
		level = log.DebugLevel
	}

	file := settings.File
	if file == "" {
		file = "vlist.log"
	}
	path, err := filepath.Abs(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log file: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    max(settings.MaxSizeMB, 1),
		MaxBackups: settings.MaxBackups,
	}

	logger := New(w, level)
	log.SetDefault(logger)
	return logger, w, nil
}

// New creates a logger writing to w in the format used by the log file.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Prefix:          "vlist",
		Level:           level,
	})
}
