package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

const (
	logDir      = constant.LogDir
	logFileName = constant.LogFileName
	maxLogSize  = constant.MaxLogSize
)

// setupLogging discards log output unless debug is set
// With debug, output goes to logs/vi-snake.log; a file over maxLogSize is rotated to a timestamped name first
// The terminal belongs to tcell, so logs never reach stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("vi-snake started, pid %d", os.Getpid())
	if rotateErr != nil {
		log.Printf("log rotation: %v", rotateErr)
	}
	return f
}

// renameFile is swapped in tests to force the in-place fallback
var renameFile = os.Rename

// rotateLog moves an oversized log aside, truncating it in place if the move fails
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	rotated := filepath.Join(logDir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
	renameErr := renameFile(logPath, rotated)
	if renameErr == nil {
		return nil
	}
	if err := os.Truncate(logPath, 0); err != nil {
		return errors.Join(renameErr, fmt.Errorf("truncate: %w", err))
	}
	return fmt.Errorf("rename failed, truncated in place: %w", renameErr)
}
