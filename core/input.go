package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/abircic/aash/core/config"
	"github.com/abircic/aash/core/sys"
)

// lineReader yields one line of input at a time, prompting before each
// read.
type lineReader interface {
	// ReadLine returns the next line without its trailing newline. It
	// returns io.EOF when input is exhausted, discarding any half-read
	// line.
	ReadLine() (string, error)
	io.Closer
}

// newLineReader picks line editing when stdin is a terminal and a plain
// buffered reader for pipes and files.
func newLineReader(sysOS sys.OS, configuration *config.Configuration) (lineReader, error) {
	if fd, ok := terminalFd(sysOS.Stdin()); ok {
		return newTermReader(sysOS, promptText(configuration, true), fd)
	}

	return &pipeReader{
		prompt: promptText(configuration, false),
		out:    sysOS.Stdout(),
		r:      bufio.NewReader(sysOS.Stdin()),
	}, nil
}

// terminalFd reports the descriptor behind r when it is a terminal.
func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// promptText renders the configured prompt, colored when the color mode
// allows it.
func promptText(configuration *config.Configuration, isTerminal bool) string {
	switch configuration.Color {
	case config.ColorNever:
		return configuration.Prompt
	case config.ColorAuto:
		if !isTerminal {
			return configuration.Prompt
		}
	}

	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(configuration.Prompt)
}

// termReader reads with line editing, history and width awareness.
type termReader struct {
	rl *readline.Instance
}

func newTermReader(sysOS sys.OS, prompt string, fd int) (lineReader, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(sysOS.Stdin()),
		Stdout: sysOS.Stdout(),
		Stderr: sysOS.Stderr(),
		FuncGetWidth: func() int {
			width, _, err := term.GetSize(fd)
			if err != nil {
				return 80
			}
			return width
		},
		FuncIsTerminal: func() bool {
			return true
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	rl.SetPrompt(prompt)

	return &termReader{rl: rl}, nil
}

func (t *termReader) ReadLine() (string, error) {
	return t.rl.Readline()
}

func (t *termReader) Close() error {
	return t.rl.Close()
}

// pipeReader reads lines with no length limit and no terminal handling.
// The prompt is still printed each iteration, matching the interactive
// reader.
type pipeReader struct {
	prompt string
	out    io.Writer
	r      *bufio.Reader
}

func (p *pipeReader) ReadLine() (string, error) {
	fmt.Fprint(p.out, p.prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		// A final line without a newline is dropped together with the
		// error, input ends at the last complete line.
		return "", err
	}

	return strings.TrimSuffix(line, "\n"), nil
}

func (p *pipeReader) Close() error {
	return nil
}
