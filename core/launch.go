package core

import (
	"errors"
	"os/exec"

	"github.com/abircic/aash/commands"
	"github.com/abircic/aash/core/sys"
)

// launch runs an external program, blocking until it terminates. The child
// inherits the interpreter's streams, environment and working directory.
// Its exit status is discarded, a child's failure is its own business.
func (s *Shell) launch(tokens []string) sys.Signal {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	// exec funnels a non-file stdin through a pipe whose copy outlives
	// the child, so input comes from the source stream, never a tee.
	cmd.Stdin = s.OS.ChildStdin()
	cmd.Stdout = s.OS.Stdout()
	cmd.Stderr = s.OS.Stderr()

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The program never started, typically a bad name or permissions.
		commands.Errorf(s.OS, "%v", err)
		s.Log.WithError(err).WithField("command", tokens[0]).Warn("launch failed")
	}

	return sys.Continue
}
