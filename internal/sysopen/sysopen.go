// Package sysopen reveals filesystem paths in the desktop file manager.
package sysopen

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the platform file manager on path and returns without
// waiting for it to exit.
func Open(path string) error {
	return openOn(runtime.GOOS, path)
}

func openOn(goos, path string) error {
	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s in file manager: %w", path, err)
	}
	return nil
}
