package core

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abircic/aash/core/sys"
	"github.com/abircic/aash/core/ttylog"
)

func TestLaunchUnknownProgram(t *testing.T) {
	f := newShellFixture(t, "")

	signal := f.shell.Execute([]string{"no_such_program_xyz", "--flag"})

	assert.Equal(t, sys.Continue, signal)
	assert.Contains(t, f.stderr.String(), "aash: ")
	assert.Contains(t, f.stderr.String(), "no_such_program_xyz")
	assert.Empty(t, f.stdout.String())
}

func TestLaunchOutputGoesToStdout(t *testing.T) {
	if _, err := exec.LookPath("/bin/echo"); err != nil {
		t.Skip("/bin/echo not available:", err)
	}

	f := newShellFixture(t, "/bin/echo external hi\nexit\n")

	require.NoError(t, f.shell.Run())

	assert.Equal(t, "> external hi\n> ", f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestLaunchDiscardsExitStatus(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not on PATH:", err)
	}

	f := newShellFixture(t, "false\nexit\n")

	require.NoError(t, f.shell.Run())

	// A failing child is not an interpreter error.
	assert.Empty(t, f.stderr.String())
	assert.Equal(t, "> > ", f.stdout.String())
	assert.Equal(t, -1, f.exitCode)
}

func TestLaunchBlocksUntilChildExits(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not on PATH:", err)
	}

	// Both lines run in order, so the child's write fully precedes the
	// builtin's.
	f := newShellFixture(t, "sh -c echo\necho after\nexit\n")

	require.NoError(t, f.shell.Run())

	assert.Equal(t, "> \n> after \n> ", f.stdout.String())
}

// idleReader blocks forever, like a terminal nobody is typing into.
type idleReader struct{}

func (idleReader) Read([]byte) (int, error) {
	select {}
}

func TestLaunchRecordedSessionReturnsPromptly(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not on PATH:", err)
	}

	// Streams wired the way a record.dir session wires them, with the
	// stdin tee sitting on an idle terminal.
	f := newShellFixture(t, "")
	rec := ttylog.NewRecorder(idleReader{}, f.stdout, f.stderr, func(*ttylog.Entry) error { return nil })
	f.shell.OS = sys.WithIO(f.os, rec.Stdin(), rec.Stdout(), rec.Stderr())

	done := make(chan sys.Signal, 1)
	go func() { done <- f.shell.Execute([]string{"true"}) }()

	select {
	case signal := <-done:
		assert.Equal(t, sys.Continue, signal)
	case <-time.After(5 * time.Second):
		t.Fatal("launch still waiting on the stdin tee after the child exited")
	}
}

func TestLaunchRecordedSessionCapturesChildOutput(t *testing.T) {
	if _, err := exec.LookPath("/bin/echo"); err != nil {
		t.Skip("/bin/echo not available:", err)
	}

	f := newShellFixture(t, "")
	var entries []ttylog.Entry
	sink := func(entry *ttylog.Entry) error {
		entries = append(entries, ttylog.Entry{Fd: entry.Fd, Data: append([]byte(nil), entry.Data...)})
		return nil
	}
	rec := ttylog.NewRecorder(idleReader{}, f.stdout, f.stderr, sink)
	f.shell.OS = sys.WithIO(f.os, rec.Stdin(), rec.Stdout(), rec.Stderr())

	signal := f.shell.Execute([]string{"/bin/echo", "recorded"})

	assert.Equal(t, sys.Continue, signal)
	assert.Equal(t, "recorded\n", f.stdout.String())

	var transcribed []byte
	for _, entry := range entries {
		require.Equal(t, ttylog.FDStdout, entry.Fd)
		transcribed = append(transcribed, entry.Data...)
	}
	assert.Equal(t, "recorded\n", string(transcribed))
}
