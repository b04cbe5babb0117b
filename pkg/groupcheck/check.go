// Package groupcheck validates a project directory and the files it must contain.
//
// The group is a soft check: once the directory exists, every file check runs
// and is reported as a child result, but file failures do not change the
// group's own status. Callers aggregating results should use Result.Failed
// to account for failing children.
package groupcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/filecheck"
)

// File is one required file inside the group.
type File struct {
	Path        string `yaml:"path"`        // relative to the project root
	Description string `yaml:"description"` // e.g., "Vite configuration"
}

// Check verifies a directory and its required files.
type Check struct {
	Root  string               // project root
	Dir   string               // directory relative to Root, e.g., "frontend"
	Label string               // used in messages; defaults to Dir
	Files []File               // checked in order, never short-circuited
	FS    filecheck.FileSystem // injected for testing
}

// Run executes the directory group check.
func (c *Check) Run() check.Result {
	label := c.Label
	if label == "" {
		label = c.Dir
	}
	result := check.Result{Name: c.Dir}

	dir := filecheck.Check{
		Root:        c.Root,
		Path:        c.Dir,
		Description: label + " directory",
		ExpectDir:   true,
		FS:          c.FS,
	}
	if dr := dir.Run(); !dr.OK() {
		result.Resolve(fmt.Sprintf("Ensure the %s directory exists in the project root", c.Dir))
		return result.Fail(label+" directory not found", dr.Err)
	}

	for _, f := range c.Files {
		fc := filecheck.Check{
			Root:        c.Root,
			Path:        f.Path,
			Description: f.Description,
			FS:          c.FS,
		}
		result.Children = append(result.Children, fc.Run())
	}

	return result.Pass(capitalize(label) + " configuration validated")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
