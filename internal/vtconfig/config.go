// Package vtconfig loads the harness's optional shell/palette/layout
// configuration. It is deliberately small: the core vt package has no
// configuration of its own (every Screen is configured by the dispatcher
// calls fed to it), so everything here is harness-level, grounded on the
// teacher's internal/config package (same directory-resolution idiom,
// same "missing file is not an error" behavior).
package vtconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the harness's tunables: which shell to launch, a 16-color
// palette, and a pane layout. Only Shell is used by cmd/vtmux; internal/render
// emits indexed colors as SGR codes and does not read Palette or Layout.
type Config struct {
	Path string `json:"-"`

	Shell   string            `json:"shell"`
	Palette map[string]string `json:"palette"` // "0".."15" -> "#rrggbb"
	Layout  LayoutConfig      `json:"layout"`
}

// LayoutConfig describes a two-pane layout. The single-pane harness loads it
// but does not apply it.
type LayoutConfig struct {
	MinPaneWidth  int `json:"minPaneWidth"`
	StartupSplit  int `json:"startupSplitPercent"`
}

// DefaultConfig returns the built-in configuration, used whenever no config
// file is present or it fails to parse.
func DefaultConfig() *Config {
	return &Config{
		Shell: defaultShell(),
		Palette: map[string]string{
			"0": "#000000", "1": "#cd3131", "2": "#0dbc79", "3": "#e5e510",
			"4": "#2472c8", "5": "#bc3fbc", "6": "#11a8cd", "7": "#e5e5e5",
			"8": "#666666", "9": "#f14c4c", "10": "#23d18b", "11": "#f5f543",
			"12": "#3b8eea", "13": "#d670d6", "14": "#29b8db", "15": "#e5e5e5",
		},
		Layout: LayoutConfig{MinPaneWidth: 20, StartupSplit: 50},
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// DefaultPath returns ~/.config/vtmux/config.json via os.UserConfigDir,
// matching the teacher's DefaultPaths' use of a single well-known home
// directory rather than scattering state across ad hoc locations.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vtmux", "config.json"), nil
}

// Load reads path and overlays it onto DefaultConfig. A missing file is not
// an error: the harness runs fine with defaults alone. A malformed file
// also falls back to defaults rather than failing startup, since a broken
// palette file should never prevent a terminal from opening.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, nil
	}

	var onDisk Config
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return cfg, nil
	}
	if onDisk.Shell != "" {
		cfg.Shell = onDisk.Shell
	}
	for k, v := range onDisk.Palette {
		cfg.Palette[k] = v
	}
	if onDisk.Layout.MinPaneWidth > 0 {
		cfg.Layout.MinPaneWidth = onDisk.Layout.MinPaneWidth
	}
	if onDisk.Layout.StartupSplit > 0 {
		cfg.Layout.StartupSplit = onDisk.Layout.StartupSplit
	}
	return cfg, nil
}
