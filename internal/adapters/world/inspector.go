package world

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	positionCommand  = "data get entity @p Pos"
	dimensionCommand = "data get entity @p Dimension"
	daytimeCommand   = "time query daytime"

	snapshotKey     = "snapshot"
	snapshotTTL     = 2 * time.Second
	cleanupInterval = 10 * time.Second
)

var (
	positionPattern  = regexp.MustCompile(`\[\s*(-?[\d.]+(?:[eE]-?\d+)?)[dDfF]?\s*,\s*(-?[\d.]+(?:[eE]-?\d+)?)[dDfF]?\s*,\s*(-?[\d.]+(?:[eE]-?\d+)?)[dDfF]?\s*\]`)
	dimensionPattern = regexp.MustCompile(`"(?:minecraft:)?([a-z_]+)"`)
	daytimePattern   = regexp.MustCompile(`(?i)time is\s+(-?\d+)`)
)

var errNoPosition = errors.New("player position unavailable")

// Inspector reads live player and world signals through the game adapter.
// Snapshots are cached briefly so a dialogue turn does not fan out the same
// queries twice.
type Inspector struct {
	game   ports.GameCommandAdapter
	seeds  ports.SeedStatusProvider
	cache  *gocache.Cache
	logger *zap.Logger
}

var (
	_ ports.WorldInspector        = (*Inspector)(nil)
	_ ports.PlayerContextProvider = (*Inspector)(nil)
)

func NewInspector(game ports.GameCommandAdapter, seeds ports.SeedStatusProvider, logger *zap.Logger) *Inspector {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Inspector{
		game:   game,
		seeds:  seeds,
		cache:  gocache.New(snapshotTTL, cleanupInterval),
		logger: logger,
	}
}

func (i *Inspector) Inspect(ctx context.Context) (domain.WorldFacts, error) {
	facts, err := i.snapshot(ctx)
	if err != nil {
		return domain.WorldFacts{}, err
	}

	if i.seeds != nil {
		status, err := i.seeds.SeedStatus(ctx)
		if err != nil {
			i.logger.Debug("read seed status", zap.Error(err))
		} else {
			facts.Seed = status.Seed
		}
	}

	return facts, nil
}

// CurrentContext returns the player's position, or nil when the game did not
// report one.
func (i *Inspector) CurrentContext(ctx context.Context) (*domain.PlayerContext, error) {
	facts, err := i.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if facts.Position == nil {
		return nil, nil
	}

	player := *facts.Position
	return &player, nil
}

func (i *Inspector) Invalidate() {
	i.cache.Delete(snapshotKey)
}

func (i *Inspector) snapshot(ctx context.Context) (domain.WorldFacts, error) {
	if cached, ok := i.cache.Get(snapshotKey); ok {
		if facts, ok := cached.(domain.WorldFacts); ok {
			return facts, nil
		}
	}

	facts, err := i.collect(ctx)
	if err != nil {
		return domain.WorldFacts{}, err
	}

	i.cache.SetDefault(snapshotKey, facts)
	return facts, nil
}

func (i *Inspector) collect(ctx context.Context) (domain.WorldFacts, error) {
	var (
		mu        sync.Mutex
		position  *domain.PlayerContext
		dimension = "overworld"
		daytime   *int
		failures  []error
	)
	fail := func(command string, err error) {
		mu.Lock()
		failures = append(failures, fmt.Errorf("%s: %w", command, err))
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		output, err := i.game.Send(gctx, positionCommand)
		if err != nil {
			fail(positionCommand, err)
			return nil
		}
		parsed, err := parsePosition(output)
		if err != nil {
			fail(positionCommand, err)
			return nil
		}
		mu.Lock()
		position = parsed
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		output, err := i.game.Send(gctx, dimensionCommand)
		if err != nil {
			fail(dimensionCommand, err)
			return nil
		}
		if parsed := parseDimension(output); parsed != "" {
			mu.Lock()
			dimension = parsed
			mu.Unlock()
		}
		return nil
	})
	g.Go(func() error {
		output, err := i.game.Send(gctx, daytimeCommand)
		if err != nil {
			fail(daytimeCommand, err)
			return nil
		}
		if parsed, ok := parseDaytime(output); ok {
			mu.Lock()
			daytime = &parsed
			mu.Unlock()
		}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return domain.WorldFacts{}, err
	}

	for _, failure := range failures {
		i.logger.Debug("world query failed", zap.Error(failure))
	}
	if position == nil && daytime == nil {
		return domain.WorldFacts{}, fmt.Errorf("inspect world: %w", errors.Join(append([]error{errNoPosition}, failures...)...))
	}

	facts := domain.WorldFacts{DayTime: daytime}
	if position != nil {
		position.Dimension = dimension
		facts.Position = position
	}

	return facts, nil
}

func parsePosition(output string) (*domain.PlayerContext, error) {
	match := positionPattern.FindStringSubmatch(output)
	if match == nil {
		return nil, fmt.Errorf("%w: unexpected output %q", errNoPosition, output)
	}

	x, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil, fmt.Errorf("parse x: %w", err)
	}
	z, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return nil, fmt.Errorf("parse z: %w", err)
	}

	return &domain.PlayerContext{X: int(math.Floor(x)), Z: int(math.Floor(z))}, nil
}

func parseDimension(output string) string {
	match := dimensionPattern.FindStringSubmatch(output)
	if match == nil {
		return ""
	}

	switch name := strings.TrimPrefix(match[1], "the_"); name {
	case "overworld", "nether", "end":
		return name
	default:
		return ""
	}
}

func parseDaytime(output string) (int, bool) {
	match := daytimePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, false
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return value, true
}
