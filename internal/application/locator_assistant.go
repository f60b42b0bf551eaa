package application

import (
	"context"
	"fmt"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"go.uber.org/zap"
)

const (
	seedRequired         = "A cracked seed is required"
	seedLogNotConfigured = "SeedCrackerX log path is not configured"
	locatorRemediation   = "Configure a cubiomes-compatible CLI and MCA_LOCATOR_CUBIOMES_BIN"
)

type LocateRequest struct {
	Target     string
	X          int
	Z          int
	Dimension  string
	Seed       *int64
	SeedStatus *domain.SeedKnowledge
}

// LocatorAssistant checks the seed precondition before asking the locator.
// Failures come back as a list of human-readable remediation steps.
type LocatorAssistant struct {
	locator ports.WorldLocator
	seeds   ports.SeedStatusProvider
	logger  *zap.Logger
}

func NewLocatorAssistant(locator ports.WorldLocator, seeds ports.SeedStatusProvider, logger *zap.Logger) *LocatorAssistant {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LocatorAssistant{locator: locator, seeds: seeds, logger: logger}
}

func (a *LocatorAssistant) HasSeedProvider() bool {
	return a.seeds != nil
}

func (a *LocatorAssistant) SeedStatus(ctx context.Context) domain.SeedKnowledge {
	if a.seeds == nil {
		return domain.SeedKnowledge{Source: "none", RequirementsMissing: []string{seedLogNotConfigured}}
	}

	status, err := a.seeds.SeedStatus(ctx)
	if err != nil {
		a.logger.Warn("read seed status", zap.Error(err))
		return domain.SeedKnowledge{Source: "none", RequirementsMissing: []string{fmt.Sprintf("Seed status unavailable: %v", err)}}
	}

	return status
}

func (a *LocatorAssistant) NearestStructure(ctx context.Context, req LocateRequest) (*domain.StructureLocation, []string) {
	return a.nearest(ctx, req, "structure")
}

func (a *LocatorAssistant) NearestBiome(ctx context.Context, req LocateRequest) (*domain.BiomeLocation, []string) {
	return a.nearest(ctx, req, "biome")
}

func (a *LocatorAssistant) nearest(ctx context.Context, req LocateRequest, kind string) (*domain.Location, []string) {
	if missing := seedMissing(req.Seed, req.SeedStatus); len(missing) > 0 {
		return nil, missing
	}

	query := ports.LocateQuery{
		Seed:      *req.Seed,
		Target:    req.Target,
		X:         req.X,
		Z:         req.Z,
		Dimension: req.Dimension,
	}

	var (
		location *domain.Location
		err      error
	)
	if a.locator != nil {
		if kind == "biome" {
			location, err = a.locator.NearestBiome(ctx, query)
		} else {
			location, err = a.locator.NearestStructure(ctx, query)
		}
	}
	if err != nil {
		a.logger.Warn("locate nearest "+kind, zap.String("target", req.Target), zap.Error(err))
		return nil, []string{fmt.Sprintf("The %s locator failed: %v", kind, err), locatorRemediation}
	}
	if location == nil {
		return nil, []string{fmt.Sprintf("No %s locator backend returned data", kind), locatorRemediation}
	}

	return location, nil
}

func seedMissing(seed *int64, status *domain.SeedKnowledge) []string {
	if seed != nil {
		return nil
	}
	if status != nil && len(status.RequirementsMissing) > 0 {
		return status.RequirementsMissing
	}
	return []string{seedRequired}
}
