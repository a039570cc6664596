// Package logger builds the structured session logger for the interpreter.
//
// Sessions stay silent unless a log file is configured, the interpreter's
// stdout and stderr belong to the commands it runs.
package logger

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/abircic/aash/core/config"
)

// NewSessionID returns a lexically sortable unique ID naming one session.
func NewSessionID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// New builds a logger from configuration, tagged with the session ID. The
// returned closer owns the log file and must be closed when the session
// ends.
func New(cfg config.Log, sessionID string) (*logrus.Entry, io.Closer, error) {
	log := logrus.New()

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	var closer io.Closer = nopCloser{}
	if cfg.File == "" {
		log.SetOutput(io.Discard)
	} else {
		fd, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(fd)
		closer = fd
	}

	return log.WithField("session_id", sessionID), closer, nil
}

// Nop returns a logger that discards everything.
func Nop() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
