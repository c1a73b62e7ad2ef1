// Package osutil holds the platform names, exit codes and file system
// helpers shared by the tracker's packages.
package osutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// GOOS values the tracker branches on.
const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ExitCode is a process exit status.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

// Int returns the code for os.Exit.
func (c ExitCode) Int() int {
	return int(c)
}

// DirPermission is the mode for directories holding tracker data.
const DirPermission = 0o755

// EnsureParentDir creates the directory that will hold the file at path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}
