//go:build windows

package pty

import "os/exec"

func setProcessGroup(cmd *exec.Cmd) {}

func killProcessGroup(leaderPID int) error {
	return nil
}
