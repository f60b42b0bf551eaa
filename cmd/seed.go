package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/bnema/mc-assistant/internal/adapters/seed"
	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedStatusCmd(a *app) *cobra.Command {
	var (
		logPath string
		wait    bool
		timeout time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "seed-status",
		Short: "Show what SeedCrackerX knows about the world seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				status domain.SeedKnowledge
				err    error
			)
			switch {
			case !a.session.PermissionGranted():
				if wait {
					return fmt.Errorf("seed status: %w", domain.ErrDataPermission)
				}
				status = a.session.State().Seed
			case wait:
				status, err = waitForSeed(cmd, a, seedProvider(a, logPath), timeout)
			default:
				status, err = seedProvider(a, logPath).SeedStatus(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("seed status: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, status)
			}
			return writeSeedStatus(cmd.OutOrStdout(), status)
		},
	}

	cmd.Flags().StringVar(&logPath, "seedcracker-file", "", "SeedCrackerX log file (default from seedcracker.log_path)")
	cmd.Flags().BoolVar(&wait, "wait", false, "Block until the seed is cracked")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up waiting after this long (0 waits forever)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func seedProvider(a *app, logPath string) *seed.FileStatusProvider {
	if logPath != "" {
		return seed.NewFileStatusProvider(logPath)
	}
	return a.seeds
}

func waitForSeed(cmd *cobra.Command, a *app, provider *seed.FileStatusProvider, timeout time.Duration) (domain.SeedKnowledge, error) {
	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	waiter := seed.NewWaiter(provider, a.logger.Named("seed"))

	return runWaitSpinner(ctx, cmd.ErrOrStderr(), "Waiting for SeedCrackerX...", waiter.Wait)
}

func writeSeedStatus(w io.Writer, status domain.SeedKnowledge) error {
	if status.Cracked() {
		_, err := fmt.Fprintf(w, "Seed: %d\nSource: %s\nConfidence: %.2f\n", *status.Seed, status.Source, status.Confidence)
		return err
	}

	if _, err := fmt.Fprintln(w, "Seed not cracked yet."); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(status.Details)) {
		if _, err := fmt.Fprintf(w, "%s: %d\n", key, status.Details[key]); err != nil {
			return err
		}
	}
	for _, requirement := range status.RequirementsMissing {
		if _, err := fmt.Fprintf(w, "- %s\n", requirement); err != nil {
			return err
		}
	}
	return nil
}
