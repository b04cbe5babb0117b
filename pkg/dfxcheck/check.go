// Package dfxcheck validates the dfx.json project configuration.
package dfxcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Masterminds/semver/v3"

	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/filecheck"
)

const (
	// DefaultFile is the configuration file looked up at the project root.
	DefaultFile = "dfx.json"
	// RegistryKey holds the canister definitions.
	RegistryKey = "canisters"
)

// DefaultCanisters are the canister definitions every project must declare.
var DefaultCanisters = []string{"backend", "frontend"}

// Check verifies that dfx.json exists, parses, and declares the required canisters.
// Steps run in that order and stop at the first failure.
type Check struct {
	Root      string     // project root
	File      string     // config file relative to Root (default: dfx.json)
	Canisters []string   // required keys under "canisters" (default: backend, frontend)
	FS        FileSystem // injected for testing
}

// Run executes the dfx.json check.
func (c *Check) Run() check.Result {
	file := c.File
	if file == "" {
		file = DefaultFile
	}
	canisters := c.Canisters
	if canisters == nil {
		canisters = DefaultCanisters
	}
	fsys := c.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}

	result := check.Result{Name: file}

	content, err := fsys.ReadFile(filecheck.Resolve(c.Root, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Resolve(`Run "dfx new" to initialize a new Internet Computer project or ensure ` + file + ` exists in the project root.`)
			return result.Fail(file+" configuration file not found", err)
		}
		result.Resolve("Ensure " + file + " is readable")
		return result.Failf("Failed to read %s: %v", file, err)
	}

	// Decoded keys follow last-wins for duplicates, like the deploy tooling.
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		result.Resolve("Ensure " + file + " contains valid JSON")
		return result.Fail(fmt.Sprintf("Failed to parse %s: %s", file, err.Error()), err)
	}

	registry, ok := lookup(doc, RegistryKey)
	if !ok || !truthy(registry) {
		result.Resolve("Add canister definitions to " + file)
		return result.Failf("%s is missing %q configuration", file, RegistryKey)
	}

	for _, name := range canisters {
		if v, ok := lookup(registry, name); !ok || !truthy(v) {
			result.Resolve(fmt.Sprintf("Add a %s canister configuration to %s", name, file))
			return result.Failf("%s is missing %q canister definition", file, name)
		}
	}

	if v, ok := lookup(doc, "dfx"); ok {
		checkVersion(v, &result)
	}

	return result.Pass(file + " configuration is valid")
}

// checkVersion records the pinned dfx version. A malformed value is a warning only.
func checkVersion(v any, result *check.Result) {
	raw, ok := v.(string)
	if !ok {
		b, _ := json.Marshal(v)
		result.Warnf("dfx version %s is not a string", b)
		return
	}
	ver, err := semver.StrictNewVersion(raw)
	if err != nil {
		result.Warnf("dfx version %q is not a valid semantic version", raw)
		return
	}
	result.AddDetailf("dfx version: %s", ver)
}

// lookup returns the member key of a decoded JSON object.
func lookup(v any, key string) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	val, ok := obj[key]
	return val, ok
}

// truthy treats null, false, 0 and "" as missing, like the deploy tooling does.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
