// Package sys abstracts the pieces of the operating system the interpreter
// touches so commands can run against a real host or an in-memory fake.
package sys

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Signal tells the read-eval loop whether to keep running after a command.
type Signal int

const (
	// Continue keeps the loop running.
	Continue Signal = iota
	// Terminate ends the loop.
	Terminate
)

func (s Signal) String() string {
	if s == Terminate {
		return "terminate"
	}
	return "continue"
}

// CommandFunc is the uniform entry point for builtin commands. The command
// name and its arguments arrive through Args() on the supplied OS.
type CommandFunc func(sysOS OS) Signal

// IO holds the standard streams of a process.
type IO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer

	// ChildStdin returns the input stream handed to launched programs.
	// Wrappers a derived view puts around Stdin do not apply to it.
	ChildStdin() io.Reader
}

// OS is the surface of the operating system visible to the interpreter and
// its builtin commands.
type OS interface {
	IO

	// Args holds the invocation tokens, Args()[0] is the command name.
	Args() []string

	// Getwd returns the current working directory.
	Getwd() (string, error)
	// Chdir changes the current working directory.
	Chdir(dir string) error
	// Mkdir creates a directory with the given permissions.
	Mkdir(dir string, perm os.FileMode) error
	// Open opens the named file or directory for reading.
	Open(name string) (afero.File, error)
}
