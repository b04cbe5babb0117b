package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor directory holds the marker file.
var ErrRootNotFound = errors.New("project root not found")

// FindRoot returns the project root. An explicit root is used as-is after
// checking it is a directory. Otherwise the search walks up from startDir
// looking for marker, stopping at the home directory, a .git directory or
// the filesystem root.
func FindRoot(startDir, explicitRoot, marker string) (string, error) {
	if explicitRoot != "" {
		abs, err := filepath.Abs(explicitRoot)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project root: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root %s is not a directory", abs)
		}
		return abs, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(currentDir, marker)); err == nil {
			return currentDir, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%w: no %s above %s", ErrRootNotFound, marker, startDir)
}
