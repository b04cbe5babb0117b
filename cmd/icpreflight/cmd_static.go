package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/diagnostics"
	"github.com/vertti/icpreflight/pkg/output"
	"github.com/vertti/icpreflight/pkg/project"
)

var staticCmd = &cobra.Command{
	Use:   "static",
	Short: "Check required files and dfx.json before deployment",
	Args:  cobra.NoArgs,
	RunE:  runStatic,
}

func init() {
	rootCmd.AddCommand(staticCmd)
}

func runStatic(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)
	defer func() { _ = logger.Sync() }()

	var report check.Report
	boundary := &diagnostics.Boundary{Logger: logger, Out: cmd.ErrOrStderr()}
	err = boundary.Guard("static preflight", func() error {
		layout, err := resolveLayout(cfg)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cfg, layout)
		if err != nil {
			return err
		}

		p := &output.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
		p.Header(root)
		v := project.Validator{Root: root, Layout: layout, OnResult: p.PrintResult}
		report = v.Run()
		p.Summary(report)
		return nil
	})
	if err != nil {
		return err
	}

	if report.ExitCode() != check.ExitOK {
		return ErrCheckFailed
	}
	return nil
}

func resolveLayout(cfg Config) (project.Layout, error) {
	if cfg.Layout == "" {
		return project.DefaultLayout(), nil
	}
	return project.LoadLayout(cfg.Layout)
}

// resolveRoot falls back to the working directory when no project root is
// found, so a missing config file is reported by the config check itself.
func resolveRoot(cfg Config, layout project.Layout) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := project.FindRoot(wd, cfg.Root, layout.Config)
	if errors.Is(err, project.ErrRootNotFound) {
		return wd, nil
	}
	return root, err
}
