package pty

import (
	"strings"
	"testing"
	"time"
)

func TestStartEchoAndClose(t *testing.T) {
	term, err := Start("cat", t.TempDir(), nil, 24, 80)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer term.Close()

	if _, err := term.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	buf := make([]byte, 64)
	done := make(chan string, 1)
	go func() {
		n, _ := term.Read(buf)
		done <- string(buf[:n])
	}()

	select {
	case got := <-done:
		if !strings.Contains(got, "hello") {
			t.Errorf("read %q, want it to contain %q", got, "hello")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for echo")
	}
}

func TestCloseTerminatesChild(t *testing.T) {
	term, err := Start("sleep 30", t.TempDir(), nil, 0, 0)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := term.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if term.Running() {
		t.Errorf("expected terminal to report not running after Close")
	}
}

func TestSetSizeOnClosedTerminalIsNoop(t *testing.T) {
	term, err := Start("cat", t.TempDir(), nil, 0, 0)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	_ = term.Close()
	if err := term.SetSize(24, 80); err != nil {
		t.Errorf("SetSize on closed terminal returned error: %v", err)
	}
}
