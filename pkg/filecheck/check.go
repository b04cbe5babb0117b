package filecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vertti/icpreflight/pkg/check"
)

// Resolution is attached to every missing-file failure.
const Resolution = "Ensure the file exists and is in the correct location."

// Check verifies that a required project file exists.
// Path is resolved against Root on every run; nothing is cached.
type Check struct {
	Root        string     // project root
	Path        string     // path relative to Root, as reported
	Description string     // e.g., "Vite configuration"
	ExpectDir   bool       // require a directory instead of a file
	FS          FileSystem // injected for testing
}

// Run executes the file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.Path,
	}

	fsys := c.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}

	info, err := fsys.Stat(Resolve(c.Root, c.Path))
	if err != nil {
		result.Resolve(Resolution)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return result.Fail(fmt.Sprintf("%s not found at: %s", c.Description, c.Path), err)
		case os.IsPermission(err):
			return result.Fail(fmt.Sprintf("%s not accessible at: %s (permission denied)", c.Description, c.Path), err)
		default:
			return result.Failf("%s could not be checked at: %s (%v)", c.Description, c.Path, err)
		}
	}

	if c.ExpectDir && !info.IsDir() {
		result.Resolve(Resolution)
		return result.Failf("%s at %s is not a directory", c.Description, c.Path)
	}

	return result.Pass(fmt.Sprintf("%s found", c.Description))
}

// Resolve joins a relative path onto root. Absolute paths are returned cleaned.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
