package ttylog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectSink stores copies of every event it receives.
func collectSink(events *[]*Entry) LogSink {
	return func(entry *Entry) error {
		copied := *entry
		copied.Data = append([]byte(nil), entry.Data...)
		*events = append(*events, &copied)
		return nil
	}
}

func TestRecorder(t *testing.T) {
	var events []*Entry

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	recorder := NewRecorder(strings.NewReader("echo hi\n"), stdout, stderr, collectSink(&events))

	fmt.Fprint(recorder.Stdout(), "> ")
	line, err := bufio.NewReader(recorder.Stdin()).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", line)
	fmt.Fprint(recorder.Stdout(), "hi \n")
	fmt.Fprint(recorder.Stderr(), "oops\n")

	// The wrapped streams see everything unchanged.
	assert.Equal(t, "> hi \n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())

	require.Len(t, events, 4)
	assert.Equal(t, FDStdout, events[0].Fd)
	assert.Equal(t, "> ", string(events[0].Data))
	assert.Equal(t, FDStdin, events[1].Fd)
	assert.Equal(t, "echo hi\n", string(events[1].Data))
	assert.Equal(t, FDStdout, events[2].Fd)
	assert.Equal(t, "hi \n", string(events[2].Data))
	assert.Equal(t, FDStderr, events[3].Fd)
	assert.Equal(t, "oops\n", string(events[3].Data))
}

func TestRecorderSinkFailure(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	sink := func(entry *Entry) error { return errors.New("sink full") }

	stdout := &bytes.Buffer{}
	recorder := NewRecorder(strings.NewReader(""), stdout, io.Discard, sink)

	n, err := recorder.Stdout().Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", stdout.String())
}

func TestNewClientOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := NewClientOutput(&buf)

	require.NoError(t, sink(&Entry{Fd: FDStdin, Data: []byte("typed")}))
	require.NoError(t, sink(&Entry{Fd: FDStdout, Data: []byte("out")}))
	require.NoError(t, sink(&Entry{Fd: FDStderr, Data: []byte("err")}))

	assert.Equal(t, "outerr", buf.String())
}

func TestNewRealTimePlaybackClampsSleeps(t *testing.T) {
	count := 0
	sink := NewRealTimePlayback(time.Millisecond, func(entry *Entry) error {
		count++
		return nil
	})

	start := time.Now()
	base := time.Unix(0, 0)
	require.NoError(t, sink(&Entry{Time: base}))
	require.NoError(t, sink(&Entry{Time: base.Add(time.Hour)}))

	assert.Equal(t, 2, count)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReplayStopsOnCallbackError(t *testing.T) {
	var buf bytes.Buffer
	sink := NewAsciicastLogSink(&buf, Header{})
	require.NoError(t, sink(&Entry{Time: time.Now(), Fd: FDStdout, Data: []byte("a")}))
	require.NoError(t, sink(&Entry{Time: time.Now(), Fd: FDStdout, Data: []byte("b")}))

	wantErr := errors.New("stop")
	calls := 0
	err := Replay(NewAsciicastLogSource(&buf), func(entry *Entry) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}
