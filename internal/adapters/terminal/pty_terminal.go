package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"

	"github.com/creack/pty"

	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// eot asks a line-mode reader to stop; the shell and the console both exit on it
const eot = "\x04"

// PTYTerminal is a shell running behind a pseudo terminal
type PTYTerminal struct {
	name  string
	cmd   *exec.Cmd
	ptmx  *os.File
	out   io.Writer
	shown atomic.Bool

	pumped chan struct{}
	exited chan error
}

// NewPTYFactory returns a Factory that starts the configured shell in the project root
func NewPTYFactory(cfg *config.RuntimeConfig) Factory {
	return func(name string) (Terminal, error) {
		return StartPTYTerminal(name, cfg.Shell, cfg.ProjectRoot, os.Stdout)
	}
}

// StartPTYTerminal starts shell inside a pty. Output is discarded until Show is called.
func StartPTYTerminal(name, shell, dir string, out io.Writer) (*PTYTerminal, error) {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start %s in pty: %w", shell, err)
	}

	t := &PTYTerminal{
		name:   name,
		cmd:    cmd,
		ptmx:   ptmx,
		out:    out,
		pumped: make(chan struct{}),
		exited: make(chan error, 1),
	}
	go t.pump()
	go func() { t.exited <- cmd.Wait() }()
	return t, nil
}

func (t *PTYTerminal) pump() {
	defer close(t.pumped)
	buf := make([]byte, 4096)
	for {
		n, err := t.ptmx.Read(buf)
		if n > 0 && t.shown.Load() {
			_, _ = t.out.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (t *PTYTerminal) Name() string {
	return t.name
}

func (t *PTYTerminal) SendText(text string, addNewLine bool) error {
	if addNewLine {
		text += "\n"
	}
	if _, err := io.WriteString(t.ptmx, text); err != nil {
		return fmt.Errorf("failed to write to %s: %w", t.name, err)
	}
	return nil
}

func (t *PTYTerminal) Show() {
	t.shown.Store(true)
}

// Close sends end-of-transmission twice (once for a foreground console, once
// for the shell) and waits for the shell to exit. The process is killed when
// ctx ends first.
func (t *PTYTerminal) Close(ctx context.Context) error {
	_, _ = io.WriteString(t.ptmx, eot+eot)

	var err error
	select {
	case err = <-t.exited:
	case <-ctx.Done():
		_ = t.cmd.Process.Kill()
		<-t.exited
		err = ctx.Err()
	}

	_ = t.ptmx.Close()
	<-t.pumped

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The shell's exit status belongs to the last command the user ran
		return nil
	}
	return err
}

var _ Terminal = (*PTYTerminal)(nil)
