package locator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

// Chain asks the primary locator first and falls back when it fails or has
// no answer.
type Chain struct {
	primary  ports.WorldLocator
	fallback ports.WorldLocator
}

var _ ports.WorldLocator = (*Chain)(nil)

var (
	errNilPrimaryLocator  = errors.New("primary locator is nil")
	errNilFallbackLocator = errors.New("fallback locator is nil")
)

func NewChain(primary, fallback ports.WorldLocator) (*Chain, error) {
	if primary == nil {
		return nil, errNilPrimaryLocator
	}
	if fallback == nil {
		return nil, errNilFallbackLocator
	}

	return &Chain{primary: primary, fallback: fallback}, nil
}

func (c *Chain) NearestStructure(ctx context.Context, query ports.LocateQuery) (*domain.StructureLocation, error) {
	return c.resolve(ctx, query, ports.WorldLocator.NearestStructure)
}

func (c *Chain) NearestBiome(ctx context.Context, query ports.LocateQuery) (*domain.BiomeLocation, error) {
	return c.resolve(ctx, query, ports.WorldLocator.NearestBiome)
}

type lookup func(ports.WorldLocator, context.Context, ports.LocateQuery) (*domain.Location, error)

func (c *Chain) resolve(ctx context.Context, query ports.LocateQuery, find lookup) (*domain.Location, error) {
	location, err := find(c.primary, ctx, query)
	if err == nil && location != nil {
		return location, nil
	}
	if err != nil && shouldSkipFallback(err) {
		return nil, err
	}

	fallbackLocation, fallbackErr := find(c.fallback, ctx, query)
	if fallbackErr != nil {
		if err != nil {
			return nil, fmt.Errorf("primary locator failed: %w; fallback locator failed: %w", err, fallbackErr)
		}
		return nil, fallbackErr
	}
	if fallbackLocation == nil && err != nil {
		return nil, err
	}

	return fallbackLocation, nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// New builds the locator named by backend, optionally chained in front of a
// fallback backend.
func New(backend, fallback, cubiomesBin, minecraftVersion string) (ports.WorldLocator, error) {
	primary, err := byName(backend, cubiomesBin, minecraftVersion)
	if err != nil {
		return nil, err
	}
	if fallback == "" || fallback == backend {
		return primary, nil
	}

	secondary, err := byName(fallback, cubiomesBin, minecraftVersion)
	if err != nil {
		return nil, err
	}
	return NewChain(primary, secondary)
}

func byName(name, cubiomesBin, minecraftVersion string) (ports.WorldLocator, error) {
	switch name {
	case "", "stub":
		return Stub{}, nil
	case "demo":
		return Demo{}, nil
	case "cubiomes":
		if cubiomesBin == "" {
			return nil, fmt.Errorf("%w: cubiomes binary is not configured", domain.ErrLocatorUnavailable)
		}
		return NewCubiomes(cubiomesBin, minecraftVersion), nil
	default:
		return nil, fmt.Errorf("unknown locator backend %q", name)
	}
}
