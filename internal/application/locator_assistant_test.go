package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"github.com/bnema/mc-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocatorAssistantSeedPrecondition(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	assistant := NewLocatorAssistant(locator, nil, nil)

	location, missing := assistant.NearestStructure(context.Background(), LocateRequest{Target: "village"})
	assert.Nil(t, location)
	assert.Equal(t, []string{"A cracked seed is required"}, missing)

	status := domain.SeedKnowledge{RequirementsMissing: []string{"Need 2 more structure observations"}}
	location, missing = assistant.NearestBiome(context.Background(), LocateRequest{Target: "desert", SeedStatus: &status})
	assert.Nil(t, location)
	assert.Equal(t, status.RequirementsMissing, missing)
}

func TestLocatorAssistantDelegatesToLocator(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	want := &domain.Location{Name: "village", Dimension: "overworld", X: 1, Z: 2}
	locator.EXPECT().NearestStructure(mock.Anything, ports.LocateQuery{
		Seed: 7, Target: "village", X: 3, Z: 4, Dimension: "overworld",
	}).Return(want, nil).Once()

	assistant := NewLocatorAssistant(locator, nil, nil)
	location, missing := assistant.NearestStructure(context.Background(), LocateRequest{
		Target: "village", X: 3, Z: 4, Dimension: "overworld", Seed: int64Ptr(7),
	})

	require.Empty(t, missing)
	assert.Equal(t, want, location)
}

func TestLocatorAssistantReportsBackendFailures(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestBiome(mock.Anything, mock.Anything).Return(nil, errors.New("exit status 2")).Once()
	locator.EXPECT().NearestBiome(mock.Anything, mock.Anything).Return(nil, nil).Once()

	assistant := NewLocatorAssistant(locator, nil, nil)
	req := LocateRequest{Target: "jungle", Seed: int64Ptr(1)}

	_, missing := assistant.NearestBiome(context.Background(), req)
	assert.Equal(t, []string{
		"The biome locator failed: exit status 2",
		"Configure a cubiomes-compatible CLI and MCA_LOCATOR_CUBIOMES_BIN",
	}, missing)

	_, missing = assistant.NearestBiome(context.Background(), req)
	assert.Equal(t, []string{
		"No biome locator backend returned data",
		"Configure a cubiomes-compatible CLI and MCA_LOCATOR_CUBIOMES_BIN",
	}, missing)
}

func TestLocatorAssistantSeedStatus(t *testing.T) {
	assistant := NewLocatorAssistant(nil, nil, nil)
	status := assistant.SeedStatus(context.Background())
	assert.False(t, assistant.HasSeedProvider())
	assert.Equal(t, []string{"SeedCrackerX log path is not configured"}, status.RequirementsMissing)

	seeds := mocks.NewMockSeedStatusProvider(t)
	seeds.EXPECT().SeedStatus(mock.Anything).Return(domain.SeedKnowledge{}, errors.New("permission denied")).Once()
	assistant = NewLocatorAssistant(nil, seeds, nil)

	status = assistant.SeedStatus(context.Background())
	assert.True(t, assistant.HasSeedProvider())
	assert.Nil(t, status.Seed)
	assert.Equal(t, []string{"Seed status unavailable: permission denied"}, status.RequirementsMissing)
}
