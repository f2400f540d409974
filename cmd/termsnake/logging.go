package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	logDir      = "logs"
	logFileName = "termsnake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the standard logger at dir/termsnake.log when debug is
// set and discards everything otherwise; the screen belongs to the game. A log
// over maxLogSize is moved aside with a timestamp before a fresh one is opened.
// The returned file is nil when logging is off.
func setupLogging(dir string, debug bool, session string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("termsnake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log")
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if len(session) > 8 {
		session = session[:8]
	}
	log.SetPrefix("[" + session + "] ")
	return f, nil
}
