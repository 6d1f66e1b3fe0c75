package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/parameter"
)

var (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = int64(parameter.MaxLogSize)
)

// setupLogging builds the process logger
// Without debug all output is discarded so nothing reaches the game's terminal
// With debug, logs append to logDir/logFileName; a file above maxLogSize is rotated to .old first
func setupLogging(debug bool, level string) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}
	logger.SetLevel(lvl)

	if !debug {
		logger.SetOutput(io.Discard)
		return logger, nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	logger.SetOutput(f)
	return logger, f, nil
}
