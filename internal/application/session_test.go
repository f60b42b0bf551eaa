package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func crackedSeed(seed int64) domain.SeedKnowledge {
	return domain.SeedKnowledge{Seed: &seed, Confidence: 1, Source: "seedcrackerx"}
}

func TestSessionRefreshDetectsRunningWorldAndVersion(t *testing.T) {
	game := mocks.NewMockGameCommandAdapter(t)
	seeds := mocks.NewMockSeedStatusProvider(t)
	game.EXPECT().Send(mock.Anything, "data get entity @p Pos").Return("Steve has the following entity data: [10.5d, 64.0d, -5.5d]", nil).Twice()
	game.EXPECT().Send(mock.Anything, "seed").Return("Seed: [12345] (Minecraft 1.21.4)", nil).Once()
	seeds.EXPECT().SeedStatus(mock.Anything).Return(crackedSeed(12345), nil).Twice()

	session := NewSessionCoordinator(game, seeds, SessionConfig{MinecraftVersion: "1.20.1", DataPermission: true}, nil)

	state, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, state.InstanceRunning)
	assert.True(t, state.WorldLoaded)
	assert.Equal(t, "1.21.4", state.MinecraftVersion)
	assert.Equal(t, VersionSourceDetected, state.VersionSource)
	require.True(t, state.Seed.Cracked())
	assert.Equal(t, int64(12345), *state.Seed.Seed)

	// The version is only detected once per session.
	state, err = session.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.21.4", state.MinecraftVersion)
}

func TestSessionRefreshFallsBackToConfiguredVersion(t *testing.T) {
	game := mocks.NewMockGameCommandAdapter(t)
	game.EXPECT().Send(mock.Anything, "data get entity @p Pos").Return("", nil).Once()
	game.EXPECT().Send(mock.Anything, "seed").Return("Seed: [12345]", nil).Once()

	session := NewSessionCoordinator(game, nil, SessionConfig{MinecraftVersion: "1.20.1", DataPermission: true}, nil)

	state, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, state.InstanceRunning)
	assert.False(t, state.WorldLoaded)
	assert.Equal(t, "1.20.1", state.MinecraftVersion)
	assert.Equal(t, VersionSourceConfigured, state.VersionSource)
	assert.Equal(t, []string{seedLogNotConfigured}, state.Seed.RequirementsMissing)
}

func TestSessionRefreshWithoutGame(t *testing.T) {
	game := mocks.NewMockGameCommandAdapter(t)
	game.EXPECT().Send(mock.Anything, "data get entity @p Pos").Return("", errors.New("connection refused")).Once()

	session := NewSessionCoordinator(game, nil, SessionConfig{MinecraftVersion: "1.20.1"}, nil)

	state, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, state.InstanceRunning)
	assert.False(t, state.WorldLoaded)
	assert.Equal(t, "1.20.1", state.MinecraftVersion)
	assert.False(t, state.DataPermissionGranted)
	assert.Equal(t, []string{dataPermissionMissing}, state.Seed.RequirementsMissing)
}

func TestSessionPermissionGatesSeedStatus(t *testing.T) {
	seeds := mocks.NewMockSeedStatusProvider(t)
	session := NewSessionCoordinator(nil, seeds, SessionConfig{}, nil)

	status, err := session.SeedStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Cracked())
	assert.Equal(t, []string{dataPermissionMissing}, status.RequirementsMissing)

	seeds.EXPECT().SeedStatus(mock.Anything).Return(crackedSeed(99), nil).Once()
	status, err = session.GrantPermission(context.Background())
	require.NoError(t, err)
	require.True(t, status.Cracked())
	assert.True(t, session.PermissionGranted())
	assert.Equal(t, int64(99), *session.State().Seed.Seed)

	session.DenyPermission()
	assert.False(t, session.PermissionGranted())
	assert.False(t, session.State().Seed.Cracked())

	status, err = session.SeedStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{dataPermissionMissing}, status.RequirementsMissing)
}

func TestSessionRefreshReportsSeedReadFailure(t *testing.T) {
	game := mocks.NewMockGameCommandAdapter(t)
	seeds := mocks.NewMockSeedStatusProvider(t)
	game.EXPECT().Send(mock.Anything, mock.Anything).Return("", nil)
	seeds.EXPECT().SeedStatus(mock.Anything).Return(domain.SeedKnowledge{}, errors.New("permission denied")).Once()

	session := NewSessionCoordinator(game, seeds, SessionConfig{DataPermission: true}, nil)

	state, err := session.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh seed status")
	assert.True(t, state.InstanceRunning)
}

func TestSessionGatesLocatorAssistant(t *testing.T) {
	seeds := mocks.NewMockSeedStatusProvider(t)
	session := NewSessionCoordinator(nil, seeds, SessionConfig{}, nil)
	assistant := NewLocatorAssistant(nil, session, nil)

	status := assistant.SeedStatus(context.Background())
	assert.Equal(t, []string{dataPermissionMissing}, status.RequirementsMissing)
}
