package sys

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// hostOS backs OS with real process state. The working directory is the
// process-global one, so programs launched later observe cd.
type hostOS struct {
	fs afero.Fs
}

var _ OS = (*hostOS)(nil)

// New returns an OS backed by the host process.
func New() OS {
	return &hostOS{fs: afero.NewOsFs()}
}

func (h *hostOS) Args() []string {
	return os.Args
}

func (h *hostOS) Stdin() io.Reader {
	return os.Stdin
}

// ChildStdin is the stdin file itself, so exec passes the descriptor to
// the child instead of copying through a pipe.
func (h *hostOS) ChildStdin() io.Reader {
	return os.Stdin
}

func (h *hostOS) Stdout() io.Writer {
	return os.Stdout
}

func (h *hostOS) Stderr() io.Writer {
	return os.Stderr
}

func (h *hostOS) Getwd() (string, error) {
	return os.Getwd()
}

func (h *hostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (h *hostOS) Mkdir(dir string, perm os.FileMode) error {
	return h.fs.Mkdir(dir, perm)
}

func (h *hostOS) Open(name string) (afero.File, error) {
	return h.fs.Open(name)
}
