package ports

import (
	"context"

	"github.com/bnema/mc-assistant/internal/domain"
)

type WorldInspector interface {
	Inspect(ctx context.Context) (domain.WorldFacts, error)
}

type Recommender interface {
	Suggest(ctx context.Context, facts domain.WorldFacts, objective string) ([]domain.Recommendation, error)
}

type SchematicLoader interface {
	Load(ctx context.Context, path string) (domain.Schematic, error)
}
