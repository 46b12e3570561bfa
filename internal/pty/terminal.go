// Package pty owns pseudo-terminal creation and child-process lifecycle —
// the pty-owning collaborator the core vt package treats as external.
// Grounded on the teacher's internal/pty.Terminal, trimmed of amux's
// session-resume and agent-tracking concerns (internal/pty/resume.go,
// session_resolver.go, agent.go) which have no equivalent in this spec.
package pty

import (
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"

	"github.com/andyrewlee/vtmux/internal/vtlog"
)

const terminalCloseTimeout = 5 * time.Second

// Terminal wraps a PTY file descriptor and the shell process attached to it.
type Terminal struct {
	mu      sync.Mutex
	ptyFile *os.File
	cmd     *exec.Cmd
	closed  bool
}

// Start launches shell (via "sh -c shell" so the caller can pass flags) in
// dir with env appended to the current environment, sized to rows x cols.
func Start(shell, dir string, env []string, rows, cols uint16) (*Terminal, error) {
	cmd := exec.Command("sh", "-c", shell)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")
	setProcessGroup(cmd)

	var (
		ptmx *os.File
		err  error
	)
	if rows > 0 && cols > 0 {
		ptmx, err = pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	} else {
		ptmx, err = pty.Start(cmd)
	}
	if err != nil {
		return nil, err
	}

	return &Terminal{ptyFile: ptmx, cmd: cmd}, nil
}

// SetSize resizes the pty, which delivers SIGWINCH to the child.
func (t *Terminal) SetSize(rows, cols uint16) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.ptyFile == nil {
		return nil
	}
	return pty.Setsize(t.ptyFile, &pty.Winsize{Rows: rows, Cols: cols})
}

// Write sends input (keystrokes, pasted text) to the child.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	closed := t.closed
	ptyFile := t.ptyFile
	t.mu.Unlock()

	if closed || ptyFile == nil {
		return 0, io.ErrClosedPipe
	}
	return ptyFile.Write(p)
}

// Read reads output from the child. It does not hold the mutex during the
// blocking syscall, so Close can proceed concurrently.
func (t *Terminal) Read(p []byte) (int, error) {
	t.mu.Lock()
	closed := t.closed
	ptyFile := t.ptyFile
	t.mu.Unlock()

	if closed || ptyFile == nil {
		return 0, io.EOF
	}
	return ptyFile.Read(p)
}

// SendInterrupt writes Ctrl-C.
func (t *Terminal) SendInterrupt() error {
	_, err := t.Write([]byte{0x03})
	return err
}

// Close terminates the child process group and releases the pty.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	ptyFile := t.ptyFile
	cmd := t.cmd
	t.ptyFile = nil
	t.cmd = nil
	t.mu.Unlock()

	if ptyFile != nil {
		_ = ptyFile.Close()
	}

	if cmd != nil && cmd.Process != nil {
		leaderPID := cmd.Process.Pid
		if err := killProcessGroup(leaderPID); err != nil {
			vtlog.WithError(err, "killProcessGroup")
		}
		done := make(chan struct{})
		go func() {
			_ = cmd.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(terminalCloseTimeout):
			_ = killProcessGroup(leaderPID)
			<-done
		}
	} else if cmd != nil {
		_ = cmd.Wait()
	}

	return nil
}

// Running reports whether the child is still alive.
func (t *Terminal) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.cmd == nil {
		return false
	}
	return t.cmd.ProcessState == nil
}
