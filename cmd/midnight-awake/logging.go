package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "midnight-awake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing to logs/midnight-awake.log when debug is set,
// discarding everything otherwise; the terminal is never a log sink
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableColors:   true,
	})

	if !debug {
		log.SetLevel(logrus.WarnLevel)
		return log, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return log, nil
	}
	path := filepath.Join(logDir, logFileName)
	rotateLog(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log, nil
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, f
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
