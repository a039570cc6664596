// Package core implements the interpreter's read, tokenize, dispatch loop.
package core

import (
	"errors"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/sirupsen/logrus"

	"github.com/abircic/aash/commands"
	"github.com/abircic/aash/core/config"
	"github.com/abircic/aash/core/sys"
	"github.com/abircic/aash/core/token"
)

// Shell drives one interactive session.
type Shell struct {
	OS     sys.OS
	Config *config.Configuration
	Log    *logrus.Entry

	reader lineReader

	// Exit terminates the whole process when input runs out. Closing stdin
	// quits immediately from any loop state, even with a line half typed.
	// Tests swap it out.
	Exit func(code int)
}

// NewShell builds a shell session on top of sysOS. The line reader is
// picked by whether stdin is a terminal.
func NewShell(sysOS sys.OS, configuration *config.Configuration, log *logrus.Entry) (*Shell, error) {
	reader, err := newLineReader(sysOS, configuration)
	if err != nil {
		return nil, err
	}

	return &Shell{
		OS:     sysOS,
		Config: configuration,
		Log:    log,
		reader: reader,
		Exit:   os.Exit,
	}, nil
}

// Run executes the read, tokenize, dispatch loop until an exit command or
// end of input. Errors on individual lines never escape their iteration;
// input that fails to read twice in a row counts as end of input.
func (s *Shell) Run() error {
	defer s.reader.Close()

	s.Log.Info("session started")

	readFailures := 0

	for {
		line, err := s.reader.ReadLine()
		if err == nil {
			readFailures = 0
		}

		switch {
		case errors.Is(err, io.EOF):
			s.Log.Info("input closed")
			s.Exit(0)
			return nil

		case errors.Is(err, readline.ErrInterrupt):
			continue

		case err != nil:
			// One failed read drops the line and retries. Back to back
			// failures mean the stream is gone, not a bad line.
			readFailures++
			if readFailures > 1 {
				s.Log.WithError(err).Info("input broken")
				s.Exit(0)
				return nil
			}
			s.Log.WithError(err).Warn("couldn't read input")
			continue

		case len(line) == 0:
			continue

		default:
			if s.Execute(token.Split(line)) == sys.Terminate {
				s.Log.Info("session ended")
				return nil
			}
		}
	}
}

// Execute dispatches a single tokenized line and reports whether the loop
// should keep going. Builtins shadow external programs of the same name.
func (s *Shell) Execute(tokens []string) sys.Signal {
	if len(tokens) == 0 {
		return sys.Continue
	}

	if builtin, ok := commands.Lookup(tokens[0]); ok {
		s.Log.WithFields(logrus.Fields{"command": tokens[0], "builtin": true}).Debug("dispatch")
		return builtin(sys.WithArgs(s.OS, tokens))
	}

	s.Log.WithFields(logrus.Fields{"command": tokens[0], "builtin": false}).Debug("dispatch")
	return s.launch(tokens)
}
