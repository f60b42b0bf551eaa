package ports

import (
	"context"

	"github.com/bnema/mc-assistant/internal/domain"
)

// LocateQuery describes a lookup around a player position for a known seed.
type LocateQuery struct {
	Seed      int64
	Target    string
	X         int
	Z         int
	Dimension string
}

// WorldLocator returns nil without error when it has no answer.
type WorldLocator interface {
	NearestStructure(ctx context.Context, query LocateQuery) (*domain.StructureLocation, error)
	NearestBiome(ctx context.Context, query LocateQuery) (*domain.BiomeLocation, error)
}

type SeedStatusProvider interface {
	SeedStatus(ctx context.Context) (domain.SeedKnowledge, error)
}

type PlayerContextProvider interface {
	CurrentContext(ctx context.Context) (*domain.PlayerContext, error)
}
