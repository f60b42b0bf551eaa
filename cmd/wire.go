package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	echogame "github.com/bnema/mc-assistant/internal/adapters/game/echo"
	execgame "github.com/bnema/mc-assistant/internal/adapters/game/exec"
	jsonlhistory "github.com/bnema/mc-assistant/internal/adapters/history/jsonl"
	memoryhistory "github.com/bnema/mc-assistant/internal/adapters/history/memory"
	sqlitehistory "github.com/bnema/mc-assistant/internal/adapters/history/sqlite"
	"github.com/bnema/mc-assistant/internal/adapters/locator"
	"github.com/bnema/mc-assistant/internal/adapters/planner"
	jobsadapter "github.com/bnema/mc-assistant/internal/adapters/render/jobs"
	tomlrepo "github.com/bnema/mc-assistant/internal/adapters/repo/toml"
	"github.com/bnema/mc-assistant/internal/adapters/schematic"
	"github.com/bnema/mc-assistant/internal/adapters/seed"
	"github.com/bnema/mc-assistant/internal/adapters/world"
	"github.com/bnema/mc-assistant/internal/application"
	"github.com/bnema/mc-assistant/internal/config"
	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	cfg           config.Config
	logger        *zap.Logger
	game          ports.GameCommandAdapter
	history       ports.HistoryStore
	closeHistory  func() error
	runtime       *application.CommandRuntime
	conversations ports.ConversationRepository
	seeds         *seed.FileStatusProvider
	session       *application.SessionCoordinator
	locator       *application.LocatorAssistant
	world         *world.Inspector
	router        *application.IntentRouter
	voiceInput    *application.VoiceInputService
	voiceOutput   *application.VoiceOutputService
	jobRenderer   func([]domain.CommandJob, jobsadapter.RenderOptions) (string, error)
	now           func() time.Time
	started       bool
}

func (a *app) wire(cfg config.Config, logger *zap.Logger) error {
	history, closeHistory, err := wireHistory(cfg.History)
	if err != nil {
		return fmt.Errorf("wire history store: %w", err)
	}

	worldLocator, err := locator.New(cfg.Locator.Backend, cfg.Locator.Fallback, cfg.Locator.CubiomesBin, cfg.Locator.MinecraftVersion)
	if err != nil {
		_ = closeHistory()
		return fmt.Errorf("wire world locator: %w", err)
	}

	conversations, err := tomlrepo.NewRepository(cfg.Conversations.Path, ports.SystemClock{})
	if err != nil {
		_ = closeHistory()
		return fmt.Errorf("wire conversation repository: %w", err)
	}

	game := wireGame(cfg.Game)
	seeds := seed.NewFileStatusProvider(cfg.SeedCracker.LogPath)
	session := application.NewSessionCoordinator(game, seeds, application.SessionConfig{
		MinecraftVersion: cfg.Locator.MinecraftVersion,
		DataPermission:   cfg.SeedCracker.DataPermission,
		QueryTimeout:     cfg.Runtime.CommandTimeout,
	}, logger.Named("session"))
	inspector := world.NewInspector(game, session, logger.Named("world"))
	assistant := application.NewLocatorAssistant(worldLocator, session, logger.Named("locator"))

	runtime := application.NewCommandRuntime(game, history, ports.SystemClock{}, logger.Named("runtime"), application.RuntimeConfig{
		CommandTimeout: cfg.Runtime.CommandTimeout,
		MaxRetries:     cfg.Runtime.MaxRetries,
		RetryDelay:     cfg.Runtime.RetryDelay,
		QueueCapacity:  cfg.Runtime.QueueCapacity,
		RetainFinished: cfg.Runtime.RetainFinished,
	})

	*a = app{
		cfg:           cfg,
		logger:        logger,
		game:          game,
		history:       history,
		closeHistory:  closeHistory,
		runtime:       runtime,
		conversations: conversations,
		seeds:         seeds,
		session:       session,
		locator:       assistant,
		world:         inspector,
		router: application.NewIntentRouter(application.RouterDeps{
			Jobs:        runtime,
			Locator:     assistant,
			Players:     inspector,
			World:       inspector,
			Recommender: planner.Rules{},
			Schematics:  schematic.NewLoader(cfg.Schematics.Root),
			Logger:      logger.Named("router"),
		}),
		voiceInput: application.NewVoiceInputService(nil, application.VoiceActivationConfig{
			Mode:        application.ListeningMode(cfg.Voice.Mode),
			WakeWord:    cfg.Voice.WakeWord,
			Sensitivity: cfg.Voice.Sensitivity,
		}),
		voiceOutput: application.NewVoiceOutputService(nil, nil, application.VoiceOutputConfig{
			MaxChars: cfg.Voice.MaxChars,
		}),
		jobRenderer: jobsadapter.Render,
		now:         time.Now,
	}

	return nil
}

// start launches the command worker. Commands that only read history never
// call it.
func (a *app) start(ctx context.Context) {
	if a.started {
		return
	}
	a.runtime.Start(context.WithoutCancel(ctx))
	a.started = true
}

// close drains queued jobs into history, stops the worker and releases the
// history store.
func (a *app) close(ctx context.Context) error {
	if a.runtime == nil {
		return nil
	}

	var errs []error
	if a.started {
		if err := a.runtime.WaitIdle(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drain command queue: %w", err))
		}
		a.runtime.Stop()
		a.started = false
	}
	if a.closeHistory != nil {
		if err := a.closeHistory(); err != nil {
			errs = append(errs, fmt.Errorf("close history store: %w", err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}

func wireGame(cfg config.GameConfig) ports.GameCommandAdapter {
	if cfg.Adapter == config.GameAdapterExec {
		return execgame.NewAdapter(cfg.ExecBin, cfg.ExecArgs, cfg.CommandPrefix)
	}
	return echogame.NewAdapter()
}

func wireHistory(cfg config.HistoryConfig) (ports.HistoryStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.HistoryBackendMemory:
		return memoryhistory.NewStore(cfg.MemoryCapacity), noop, nil
	case config.HistoryBackendSQLite:
		store, err := sqlitehistory.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.HistoryBackendJSONL:
		return jsonlhistory.NewStore(cfg.Path), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
