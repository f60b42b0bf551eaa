package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/mc-assistant/internal/application"
	"github.com/spf13/cobra"
)

func newSessionStatusCmd(a *app) *cobra.Command {
	var (
		grant  bool
		deny   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "session-status",
		Short: "Check the game instance, its version and seed access",
		Long:  "Check whether the game answers commands, whether a world is loaded, which Minecraft version is in use, and whether seed data may be read. Seed access defaults to seedcracker.data_permission; --grant-permission and --deny-permission override it for this run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case grant:
				if _, err := a.session.GrantPermission(cmd.Context()); err != nil {
					return err
				}
			case deny:
				a.session.DenyPermission()
			}

			state, err := a.session.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("session status: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, state)
			}
			return writeSessionState(cmd.OutOrStdout(), state)
		},
	}

	cmd.Flags().BoolVar(&grant, "grant-permission", false, "Allow reading seed data for this run")
	cmd.Flags().BoolVar(&deny, "deny-permission", false, "Refuse reading seed data for this run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.MarkFlagsMutuallyExclusive("grant-permission", "deny-permission")

	return cmd
}

func writeSessionState(w io.Writer, state application.SessionState) error {
	version := "unknown"
	if state.MinecraftVersion != "" {
		version = fmt.Sprintf("%s (%s)", state.MinecraftVersion, state.VersionSource)
	}
	permission := "denied"
	if state.DataPermissionGranted {
		permission = "granted"
	}

	if _, err := fmt.Fprintf(w, "Instance running: %s\nWorld loaded: %s\nMinecraft version: %s\nData permission: %s\n",
		yesNo(state.InstanceRunning), yesNo(state.WorldLoaded), version, permission); err != nil {
		return err
	}
	return writeSeedStatus(w, state.Seed)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
