package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bnema/mc-assistant/internal/application"
	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/spf13/cobra"
)

var errPositionUnknown = errors.New("player position unknown; pass --x and --z")

type locateFlags struct {
	x         int
	z         int
	dimension string
	seed      int64
}

func newNearestStructureCmd(a *app) *cobra.Command {
	return newLocateCmd(a, "nearest-structure <structure>", "Locate the nearest structure, for example village", func(assistant *application.LocatorAssistant) locateFunc {
		return assistant.NearestStructure
	})
}

func newNearestBiomeCmd(a *app) *cobra.Command {
	return newLocateCmd(a, "nearest-biome <biome>", "Locate the nearest biome, for example cherry_grove", func(assistant *application.LocatorAssistant) locateFunc {
		return assistant.NearestBiome
	})
}

type locateFunc func(ctx context.Context, req application.LocateRequest) (*domain.Location, []string)

func newLocateCmd(a *app, use, short string, pick func(*application.LocatorAssistant) locateFunc) *cobra.Command {
	var flags locateFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(args[0]), " ", "_"))

			req, err := buildLocateRequest(cmd, a, target, flags)
			if err != nil {
				return err
			}

			location, missing := pick(a.locator)(cmd.Context(), req)
			if len(missing) > 0 {
				return fmt.Errorf("locate %s: %s", target, strings.Join(missing, "; "))
			}

			return writeLocation(cmd.OutOrStdout(), target, location)
		},
	}

	cmd.Flags().IntVar(&flags.x, "x", 0, "Player X coordinate (default: read from the game)")
	cmd.Flags().IntVar(&flags.z, "z", 0, "Player Z coordinate (default: read from the game)")
	cmd.Flags().StringVar(&flags.dimension, "dimension", "", "Dimension: overworld, nether or end")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "World seed (default: the cracked SeedCrackerX seed)")

	return cmd
}

func buildLocateRequest(cmd *cobra.Command, a *app, target string, flags locateFlags) (application.LocateRequest, error) {
	req := application.LocateRequest{
		Target:    target,
		X:         flags.x,
		Z:         flags.z,
		Dimension: flags.dimension,
	}

	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("z") {
		player, err := a.world.CurrentContext(cmd.Context())
		if err != nil || player == nil {
			return application.LocateRequest{}, errPositionUnknown
		}
		if !cmd.Flags().Changed("x") {
			req.X = player.X
		}
		if !cmd.Flags().Changed("z") {
			req.Z = player.Z
		}
		if req.Dimension == "" {
			req.Dimension = player.Dimension
		}
	}
	if req.Dimension == "" {
		req.Dimension = "overworld"
	}

	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		req.Seed = &seed
		return req, nil
	}

	status := a.locator.SeedStatus(cmd.Context())
	req.SeedStatus = &status
	req.Seed = status.Seed
	return req, nil
}

func writeLocation(w io.Writer, target string, location *domain.Location) error {
	dimension := location.Dimension
	if dimension == "" {
		dimension = "overworld"
	}

	_, err := fmt.Fprintf(w, "Nearest %s: x=%d z=%d in the %s, about %d blocks away (source: %s)\n",
		strings.ReplaceAll(target, "_", " "), location.X, location.Z, dimension,
		int64(math.Round(location.DistanceBlocks)), location.Source)
	return err
}
