package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"go.uber.org/zap"
)

const (
	sessionPositionQuery = "data get entity @p Pos"
	sessionVersionQuery  = "seed"

	VersionSourceDetected   = "detected"
	VersionSourceConfigured = "configured"

	dataPermissionMissing = "Data permission has not been granted"
)

var gameVersionPattern = regexp.MustCompile(`\b(\d+\.\d+(?:\.\d+)?)\b`)

type SessionConfig struct {
	MinecraftVersion string
	DataPermission   bool
	QueryTimeout     time.Duration
}

// SessionState is what the assistant last learned about the game session.
type SessionState struct {
	InstanceRunning       bool                 `json:"instance_running"`
	WorldLoaded           bool                 `json:"world_loaded"`
	MinecraftVersion      string               `json:"minecraft_version,omitempty"`
	VersionSource         string               `json:"version_source,omitempty"`
	DataPermissionGranted bool                 `json:"data_permission_granted"`
	Seed                  domain.SeedKnowledge `json:"seed"`
}

// SessionCoordinator tracks the game instance and gates access to seed data
// behind the player's permission. It satisfies ports.SeedStatusProvider so
// the locator and world inspector see the same gate.
type SessionCoordinator struct {
	game   ports.GameCommandAdapter
	seeds  ports.SeedStatusProvider
	cfg    SessionConfig
	logger *zap.Logger

	mu              sync.Mutex
	state           SessionState
	versionDetected bool
}

var _ ports.SeedStatusProvider = (*SessionCoordinator)(nil)

func NewSessionCoordinator(game ports.GameCommandAdapter, seeds ports.SeedStatusProvider, cfg SessionConfig, logger *zap.Logger) *SessionCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = DefaultRuntimeConfig().CommandTimeout
	}

	state := SessionState{DataPermissionGranted: cfg.DataPermission}
	if !cfg.DataPermission {
		state.Seed = permissionMissing()
	}
	if cfg.MinecraftVersion != "" {
		state.MinecraftVersion = cfg.MinecraftVersion
		state.VersionSource = VersionSourceConfigured
	}

	return &SessionCoordinator{
		game:   game,
		seeds:  seeds,
		cfg:    cfg,
		logger: logger,
		state:  state,
	}
}

func (c *SessionCoordinator) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *SessionCoordinator) PermissionGranted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.DataPermissionGranted
}

// GrantPermission opens the gate and reads the seed status right away.
func (c *SessionCoordinator) GrantPermission(ctx context.Context) (domain.SeedKnowledge, error) {
	c.mu.Lock()
	c.state.DataPermissionGranted = true
	c.mu.Unlock()

	return c.refreshSeed(ctx)
}

func (c *SessionCoordinator) DenyPermission() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.DataPermissionGranted = false
	c.state.Seed = permissionMissing()
}

// SeedStatus reports seed knowledge only while permission is granted.
func (c *SessionCoordinator) SeedStatus(ctx context.Context) (domain.SeedKnowledge, error) {
	if !c.PermissionGranted() {
		return permissionMissing(), nil
	}
	if c.seeds == nil {
		return domain.SeedKnowledge{Source: "none", RequirementsMissing: []string{seedLogNotConfigured}}, nil
	}

	return c.seeds.SeedStatus(ctx)
}

// Refresh probes the game for a player position and, once, for its version,
// then re-reads the seed status if permitted. A failed seed read still
// returns the game facts gathered so far.
func (c *SessionCoordinator) Refresh(ctx context.Context) (SessionState, error) {
	position, err := c.query(ctx, sessionPositionQuery)
	running := err == nil
	loaded := running && strings.TrimSpace(position) != ""
	if err != nil {
		c.logger.Debug("game instance not reachable", zap.Error(err))
	}

	c.mu.Lock()
	c.state.InstanceRunning = running
	c.state.WorldLoaded = loaded
	detect := running && !c.versionDetected
	c.mu.Unlock()

	if detect {
		c.detectVersion(ctx)
	}

	_, err = c.refreshSeed(ctx)
	return c.State(), err
}

func (c *SessionCoordinator) detectVersion(ctx context.Context) {
	output, err := c.query(ctx, sessionVersionQuery)
	if err != nil {
		c.logger.Debug("detect game version", zap.Error(err))
		return
	}

	match := gameVersionPattern.FindStringSubmatch(output)
	if match == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.MinecraftVersion = match[1]
	c.state.VersionSource = VersionSourceDetected
	c.versionDetected = true
}

func (c *SessionCoordinator) refreshSeed(ctx context.Context) (domain.SeedKnowledge, error) {
	status, err := c.SeedStatus(ctx)
	if err != nil {
		return domain.SeedKnowledge{}, fmt.Errorf("refresh seed status: %w", err)
	}

	c.mu.Lock()
	c.state.Seed = status
	c.mu.Unlock()

	return status, nil
}

func (c *SessionCoordinator) query(ctx context.Context, command string) (string, error) {
	if c.game == nil {
		return "", fmt.Errorf("query %q: %w", command, domain.ErrAdapterFailure)
	}

	queryCtx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	return c.game.Send(queryCtx, command)
}

func permissionMissing() domain.SeedKnowledge {
	return domain.SeedKnowledge{Source: "none", RequirementsMissing: []string{dataPermissionMissing}}
}
