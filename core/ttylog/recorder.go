package ttylog

import (
	"io"
	"log"
	"sync"
	"time"
)

// Recorder tees a session's standard streams into a LogSink. Bytes read
// from stdin become input events, bytes written to stdout or stderr become
// output events. The sink is serialized with a mutex so the streams can be
// shared between goroutines.
type Recorder struct {
	mutex sync.Mutex
	sink  LogSink

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRecorder creates a recorder that forwards all events to sink.
func NewRecorder(stdin io.Reader, stdout, stderr io.Writer, sink LogSink) *Recorder {
	recorder := &Recorder{sink: sink}
	recorder.stdin = &recorderReader{fd: FDStdin, r: recorder, wrapped: stdin}
	recorder.stdout = &recorderWriter{fd: FDStdout, r: recorder, wrapped: stdout}
	recorder.stderr = &recorderWriter{fd: FDStderr, r: recorder, wrapped: stderr}
	return recorder
}

func (r *Recorder) Stdin() io.Reader  { return r.stdin }
func (r *Recorder) Stdout() io.Writer { return r.stdout }
func (r *Recorder) Stderr() io.Writer { return r.stderr }

func (r *Recorder) record(fd FD, data []byte) {
	eventTime := time.Now()

	r.mutex.Lock()
	err := r.sink(&Entry{
		Time: eventTime,
		Fd:   fd,
		Data: data,
	})
	r.mutex.Unlock()

	if err != nil {
		// A failing sink must not break the session's streams.
		log.Print(err)
	}
}

type recorderReader struct {
	fd      FD
	r       *Recorder
	wrapped io.Reader
}

var _ io.Reader = (*recorderReader)(nil)

func (rc *recorderReader) Read(p []byte) (int, error) {
	n, err := rc.wrapped.Read(p)
	if n > 0 {
		rc.r.record(rc.fd, p[:n])
	}
	return n, err
}

type recorderWriter struct {
	fd      FD
	r       *Recorder
	wrapped io.Writer
}

var _ io.Writer = (*recorderWriter)(nil)

func (rc *recorderWriter) Write(p []byte) (int, error) {
	n, err := rc.wrapped.Write(p)
	if n > 0 {
		rc.r.record(rc.fd, p[:n])
	}
	return n, err
}
