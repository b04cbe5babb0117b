// Package project runs the static preflight checks over a project tree.
package project

import (
	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/dfxcheck"
	"github.com/vertti/icpreflight/pkg/filecheck"
	"github.com/vertti/icpreflight/pkg/groupcheck"
)

// Validator runs the config check and every directory group, in that order.
// Every check runs regardless of earlier failures.
type Validator struct {
	Root     string
	Layout   Layout
	FS       filecheck.FileSystem // nil uses the real file system
	ConfigFS dfxcheck.FileSystem  // nil uses the real file system

	// OnResult, when set, is called after each top-level check completes.
	OnResult func(check.Result)
}

// Checks returns the checks in execution order.
func (v *Validator) Checks() []check.Checker {
	checks := []check.Checker{
		&dfxcheck.Check{
			Root:      v.Root,
			File:      v.Layout.Config,
			Canisters: v.Layout.Canisters,
			FS:        v.ConfigFS,
		},
	}
	for _, g := range v.Layout.Groups {
		checks = append(checks, &groupcheck.Check{
			Root:  v.Root,
			Dir:   g.Dir,
			Label: g.Label,
			Files: g.Files,
			FS:    v.FS,
		})
	}
	return checks
}

// Run executes all checks and returns the aggregated report.
func (v *Validator) Run() check.Report {
	var report check.Report
	for _, c := range v.Checks() {
		r := c.Run()
		report.Add(r)
		if v.OnResult != nil {
			v.OnResult(r)
		}
	}
	return report
}
