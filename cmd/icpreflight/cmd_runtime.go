package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/icpreflight/pkg/diagnostics"
	"github.com/vertti/icpreflight/pkg/output"
	"github.com/vertti/icpreflight/pkg/runtimecheck"
)

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Probe a running backend canister",
	Long: `Probe a running backend canister through its HTTP gateway.

The backend's runPreflightChecks method is a stub that always rejects; that
rejection is a known limitation and does not fail the check. The check fails
only when no backend is configured or the backend handle is unusable.`,
	Args: cobra.NoArgs,
	RunE: runRuntime,
}

func init() {
	runtimeCmd.Flags().StringVar(&flagBackendURL, "backend-url", "", "backend gateway URL, e.g. http://127.0.0.1:4943")
	runtimeCmd.Flags().StringVar(&flagCanister, "canister", "backend", "backend canister name")
	runtimeCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (default 5s)")
	rootCmd.AddCommand(runtimeCmd)
}

func runRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)
	defer func() { _ = logger.Sync() }()

	var handle runtimecheck.Handle
	if cfg.BackendURL != "" {
		handle = &runtimecheck.HTTPHandle{
			BaseURL:  cfg.BackendURL,
			Canister: cfg.Canister,
			Timeout:  cfg.Timeout,
		}
	}

	var ready bool
	boundary := &diagnostics.Boundary{Logger: logger, Out: cmd.ErrOrStderr()}
	err = boundary.Guard("runtime preflight", func() error {
		checker := runtimecheck.New(logger)
		session := runtimecheck.NewSession(checker, runtimecheck.ProviderFunc(func() (runtimecheck.Handle, bool) {
			return handle, false
		}), logger)

		var determined bool
		ready, determined = session.Ready(cmd.Context())
		if !determined {
			// no handle: the checker reports it and fails
			ready = checker.Run(cmd.Context(), handle)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p := &output.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if !ready {
		p.Error("Runtime preflight checks FAILED", "Set --backend-url and ensure the backend canister is deployed and reachable")
		return ErrCheckFailed
	}
	p.Success("Runtime preflight checks PASSED")
	return nil
}
