package sys

import "io"

// procOS overrides the argument vector of its parent, giving each command
// invocation its own argv while sharing everything else.
type procOS struct {
	OS
	argv []string
}

// WithArgs derives an OS that reports argv as its arguments.
func WithArgs(parent OS, argv []string) OS {
	return &procOS{OS: parent, argv: argv}
}

func (p *procOS) Args() []string {
	return p.argv
}

// ioOS overrides the standard streams of its parent.
type ioOS struct {
	OS
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// WithIO derives an OS whose standard streams are replaced, for example by a
// session recorder. ChildStdin is left alone and keeps reporting the
// parent's stream.
func WithIO(parent OS, stdin io.Reader, stdout, stderr io.Writer) OS {
	return &ioOS{OS: parent, stdin: stdin, stdout: stdout, stderr: stderr}
}

func (i *ioOS) Stdin() io.Reader {
	return i.stdin
}

func (i *ioOS) Stdout() io.Writer {
	return i.stdout
}

func (i *ioOS) Stderr() io.Writer {
	return i.stderr
}
