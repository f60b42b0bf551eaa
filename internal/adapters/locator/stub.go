package locator

import (
	"context"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

// Stub never has an answer.
type Stub struct{}

var _ ports.WorldLocator = Stub{}

func (Stub) NearestStructure(context.Context, ports.LocateQuery) (*domain.StructureLocation, error) {
	return nil, nil
}

func (Stub) NearestBiome(context.Context, ports.LocateQuery) (*domain.BiomeLocation, error) {
	return nil, nil
}
