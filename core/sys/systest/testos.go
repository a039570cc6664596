// Package systest provides a deterministic in-memory sys.OS and an
// exec.Cmd-like harness for testing builtin commands.
package systest

import (
	"bytes"
	"io"
	"os"
	"path"
	"syscall"

	"github.com/spf13/afero"

	"github.com/abircic/aash/core/sys"
)

// FakeOS is an in-memory sys.OS. The working directory is tracked locally
// and relative paths resolve against it.
type FakeOS struct {
	// FS backs all filesystem operations. Seed it directly with fixtures.
	FS afero.Fs

	argv   []string
	cwd    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ sys.OS = (*FakeOS)(nil)

// NewOS creates a FakeOS rooted at "/" with disconnected streams.
func NewOS() *FakeOS {
	return &FakeOS{
		FS:     afero.NewMemMapFs(),
		cwd:    "/",
		stdin:  &bytes.Buffer{},
		stdout: io.Discard,
		stderr: io.Discard,
	}
}

func (f *FakeOS) SetArgs(argv ...string) {
	f.argv = argv
}

func (f *FakeOS) SetStdin(r io.Reader) {
	f.stdin = r
}

func (f *FakeOS) SetStdout(w io.Writer) {
	f.stdout = w
}

func (f *FakeOS) SetStderr(w io.Writer) {
	f.stderr = w
}

func (f *FakeOS) Args() []string {
	return f.argv
}

func (f *FakeOS) Stdin() io.Reader {
	return f.stdin
}

func (f *FakeOS) ChildStdin() io.Reader {
	return f.stdin
}

func (f *FakeOS) Stdout() io.Writer {
	return f.stdout
}

func (f *FakeOS) Stderr() io.Writer {
	return f.stderr
}

func (f *FakeOS) Getwd() (string, error) {
	return f.cwd, nil
}

func (f *FakeOS) Chdir(dir string) error {
	resolved := f.resolve(dir)
	info, err := f.FS.Stat(resolved)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	f.cwd = resolved
	return nil
}

func (f *FakeOS) Mkdir(dir string, perm os.FileMode) error {
	return f.FS.Mkdir(f.resolve(dir), perm)
}

func (f *FakeOS) Open(name string) (afero.File, error) {
	return f.FS.Open(f.resolve(name))
}

func (f *FakeOS) resolve(p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(f.cwd, p)
}

// Cmd runs a builtin command against a FakeOS, mirroring exec.Cmd.
type Cmd struct {
	// Process is the command under test.
	Process sys.CommandFunc
	// Argv holds the invocation tokens, Argv[0] is the command name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// OS is the fake the command runs against. It persists across runs so
	// tests can seed fixtures or inspect state afterwards.
	OS *FakeOS

	// Setup runs against OS before the command starts.
	Setup func(*FakeOS) error

	// Signal holds the continuation signal from the last Run.
	Signal sys.Signal
}

// Command creates a Cmd to run the given builtin.
func Command(process sys.CommandFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		OS:      NewOS(),
	}
}

// CombinedOutput runs the command and returns its combined stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run executes the command and records its continuation signal.
func (c *Cmd) Run() error {
	if c.Stdin != nil {
		c.OS.SetStdin(c.Stdin)
	}
	if c.Stdout != nil {
		c.OS.SetStdout(c.Stdout)
	}
	if c.Stderr != nil {
		c.OS.SetStderr(c.Stderr)
	}
	c.OS.SetArgs(c.Argv...)

	if c.Setup != nil {
		if err := c.Setup(c.OS); err != nil {
			return err
		}
	}

	c.Signal = c.Process(c.OS)
	return nil
}
