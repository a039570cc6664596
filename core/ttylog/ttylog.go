// Package ttylog records and replays interpreter session transcripts.
package ttylog

import (
	"io"
	"sync"
	"time"
)

// FD identifies the stream a transcript event belongs to.
type FD int

const (
	FDStdin FD = iota
	FDStdout
	FDStderr
)

// Entry is a single IO event in a session transcript.
type Entry struct {
	// Time the event happened.
	Time time.Time
	// Fd is the stream the data moved on.
	Fd FD
	// Data holds the raw bytes read or written.
	Data []byte
}

// LogSink receives log events.
type LogSink func(entry *Entry) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available log entry. It returns io.EOF if the
	// source has no more log entries.
	Next() (*Entry, error)
}

// NewRealTimePlayback plays back the results in real-time.
// If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prevTime time.Time

	return func(entry *Entry) error {
		once.Do(func() {
			prevTime = entry.Time
		})

		delta := entry.Time.Sub(prevTime)
		prevTime = entry.Time

		if maxSleep > 0 {
			if delta > maxSleep {
				delta = maxSleep
			}
			time.Sleep(delta)
		}

		return next(entry)
	}
}

// NewClientOutput writes stdout and stderr events to the given writer.
func NewClientOutput(w io.Writer) LogSink {
	return func(entry *Entry) error {
		if entry.Fd == FDStdin {
			return nil
		}

		_, err := w.Write(entry.Data)
		return err
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) error {
	for {
		entry, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(entry); err != nil {
			return err
		}
	}
}
