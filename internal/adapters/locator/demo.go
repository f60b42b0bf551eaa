package locator

import (
	"context"
	"math"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

const demoSource = "demo-locator"

// Demo derives positions from the seed alone. The results are stable for a
// seed but do not match real world generation.
type Demo struct{}

var _ ports.WorldLocator = Demo{}

func (Demo) NearestStructure(ctx context.Context, query ports.LocateQuery) (*domain.StructureLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.ToLower(query.Target) != "village" || query.Dimension != "overworld" {
		return nil, nil
	}

	x := floorMod(query.Seed, 4000) - 2000
	z := floorMod(floorDiv(query.Seed, 7), 4000) - 2000

	return &domain.StructureLocation{
		Name:           "village",
		Dimension:      query.Dimension,
		X:              int(x),
		Z:              int(z),
		DistanceBlocks: distance(query.X, query.Z, int(x), int(z)),
		Source:         demoSource,
		Details:        map[string]string{"warning": "Demo locator only; integrate real structure backend next."},
	}, nil
}

func (Demo) NearestBiome(ctx context.Context, query ports.LocateQuery) (*domain.BiomeLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x := floorMod(query.Seed, 8000) - 4000
	z := floorMod(floorDiv(query.Seed, 13), 8000) - 4000

	return &domain.BiomeLocation{
		Name:           query.Target,
		Dimension:      query.Dimension,
		X:              int(x),
		Z:              int(z),
		DistanceBlocks: distance(query.X, query.Z, int(x), int(z)),
		Source:         demoSource,
		Details:        map[string]string{"warning": "Demo locator only; integrate real biome backend next."},
	}, nil
}

// floorMod and floorDiv round toward negative infinity so negative seeds
// land in the same range as positive ones.
func floorMod(a, m int64) int64 {
	return ((a % m) + m) % m
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func distance(fromX, fromZ, toX, toZ int) float64 {
	return math.Hypot(float64(toX-fromX), float64(toZ-fromZ))
}
