package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/mc-assistant/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	drainTimeout       = 30 * time.Second
	skipWireAnnotation = "mca/skip-wire"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "mca",
		Short:         "Minecraft companion assistant (mca): queue game commands and ask the assistant",
		Long:          "mca runs Minecraft commands through a retrying job queue, answers natural-language questions with a slot-filling dialogue, and locates structures and biomes once the world seed is known.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipWire(cmd) {
				return nil
			}
			if cmd.DisableFlagParsing {
				if parsed, err := parseAskArgs(args); err == nil && parsed.verbose {
					verbose = true
				}
			}

			cfg, err := config.Load(viper.New())
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := newLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}

			return a.wire(cfg, logger)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if skipWire(cmd) {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), drainTimeout)
			defer cancel()

			return a.close(ctx)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSubmitCommandCmd(a),
		newGetJobCmd(a),
		newListJobsCmd(a),
		newAskCmd(a),
		newChatCmd(a),
		newSeedStatusCmd(a),
		newSessionStatusCmd(a),
		newNearestStructureCmd(a),
		newNearestBiomeCmd(a),
	)

	return rootCmd
}

func skipWire(cmd *cobra.Command) bool {
	return cmd.Annotations[skipWireAnnotation] == "true"
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	parsed := zapcore.WarnLevel
	if level != "" {
		if err := parsed.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parse log.level %q: %w", level, err)
		}
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
