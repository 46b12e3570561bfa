// Command vtmux is a thin harness that wires the vt core, the pty
// collaborator, the render bubbletea model, and config/logging together
// into a single full-screen terminal. It exists to exercise the library
// packages end to end; a real multi-panel multiplexer would drive
// internal/vt and internal/pty directly instead of going through this
// single-pane harness.
//
// Grounded on the teacher's cmd/amux-harness/main.go flag-based entrypoint.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andyrewlee/vtmux/internal/render"
	"github.com/andyrewlee/vtmux/internal/vtconfig"
	"github.com/andyrewlee/vtmux/internal/vtlog"
)

func main() {
	shell := flag.String("shell", "", "shell command to run (defaults to config/$SHELL)")
	width := flag.Int("width", 80, "initial screen width in columns")
	height := flag.Int("height", 24, "initial screen height in rows")
	configPath := flag.String("config", "", "path to config.json (defaults to OS config dir)")
	logDir := flag.String("log-dir", "", "directory for rotating logs (disabled if empty)")
	flag.Parse()

	if *logDir != "" {
		if err := vtlog.Initialize(*logDir, vtlog.LevelInfo); err != nil {
			fmt.Fprintf(os.Stderr, "vtmux: logging disabled: %v\n", err)
		}
		defer vtlog.Close()
	}

	path := *configPath
	if path == "" {
		p, err := vtconfig.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vtmux: could not resolve default config path: %v\n", err)
			os.Exit(1)
		}
		path = p
	}
	cfg, err := vtconfig.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtmux: config load failed, using defaults: %v\n", err)
		cfg = vtconfig.DefaultConfig()
	}

	shellCmd := *shell
	if shellCmd == "" {
		shellCmd = cfg.Shell
	}
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	watcher, err := vtconfig.Watch(path, func(c *vtconfig.Config) {
		vtlog.Info("config reloaded from %s", path)
	})
	if err == nil {
		defer watcher.Close()
	}

	model, err := render.New(shellCmd, dir, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtmux: failed to start shell: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		vtlog.WithError(err, "program exited with error")
		fmt.Fprintf(os.Stderr, "vtmux: %v\n", err)
		os.Exit(1)
	}
}
