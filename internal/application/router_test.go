package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"github.com/bnema/mc-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingQueue struct {
	submitted []string
	recent    []domain.CommandJob
	err       error
}

func (q *recordingQueue) Submit(command string) (domain.JobID, error) {
	if q.err != nil {
		return "", q.err
	}
	q.submitted = append(q.submitted, command)
	return domain.JobID(fmt.Sprintf("job-%d", len(q.submitted))), nil
}

func (q *recordingQueue) ListRecent(_ context.Context, limit int) ([]domain.CommandJob, error) {
	if len(q.recent) > limit {
		return q.recent[:limit], nil
	}
	return q.recent, nil
}

func int64Ptr(value int64) *int64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func TestRouterRunCommandDialogueSubmitsOnce(t *testing.T) {
	queue := &recordingQueue{}
	router := NewIntentRouter(RouterDeps{Jobs: queue, Logger: zap.NewNop()})
	state := domain.NewConversationState("s1")
	ctx := context.Background()

	reply := router.Handle(ctx, Turn{Intent: domain.VoiceIntent{Type: domain.IntentRunCommand}}, state)
	assert.Equal(t, "What Minecraft command should I run?", reply)
	assert.Equal(t, domain.IntentRunCommand, state.PendingIntent)
	assert.Equal(t, reply, state.LastQuestion)
	assert.Empty(t, queue.submitted)

	reply = router.Respond(ctx, "/time set day", "", state)
	assert.Equal(t, "Queued command `/time set day` as job job-1.", reply)
	assert.Equal(t, []string{"/time set day"}, queue.submitted)
	assert.True(t, state.Idle())
	assert.Empty(t, state.CollectedSlots)
	assert.Empty(t, state.RequiredSlots)
}

func TestRouterRunCommandWithArgumentExecutesImmediately(t *testing.T) {
	queue := &recordingQueue{}
	router := NewIntentRouter(RouterDeps{Jobs: queue})

	reply := router.Respond(context.Background(), "run command /weather clear", "", nil)
	assert.Equal(t, "Queued command `/weather clear` as job job-1.", reply)
	assert.Equal(t, []string{"/weather clear"}, queue.submitted)
}

func TestRouterRunCommandQueueFull(t *testing.T) {
	queue := &recordingQueue{err: fmt.Errorf("submit: %w", domain.ErrQueueFull)}
	router := NewIntentRouter(RouterDeps{Jobs: queue})
	state := domain.NewConversationState("s1")

	reply := router.Respond(context.Background(), "run /kill @e", "", state)
	assert.Equal(t, msgQueueFull, reply)
	assert.True(t, state.Idle())
}

func TestRouterLocateAsksInSchemaOrder(t *testing.T) {
	router := NewIntentRouter(RouterDeps{Jobs: &recordingQueue{}})
	state := domain.NewConversationState("s1")
	ctx := context.Background()

	reply := router.Respond(ctx, "where is the nearest village x = 5", "", state)
	assert.Equal(t, QuestionForSlot(SlotZ), reply)
	assert.Equal(t, map[string]string{SlotTarget: "structure:village", SlotX: "5"}, state.CollectedSlots)

	reply = router.Respond(ctx, "overworld", "", state)
	assert.Equal(t, QuestionForSlot(SlotZ), reply)
	assert.Equal(t, "overworld", state.CollectedSlots[SlotDimension])

	reply = router.Respond(ctx, "-20", "", state)
	assert.Equal(t, QuestionForSlot(SlotSeedSource), reply)
	assert.Equal(t, "-20", state.CollectedSlots[SlotZ])
}

func TestRouterLocateDoesNotOverwriteCollectedSlots(t *testing.T) {
	router := NewIntentRouter(RouterDeps{})
	state := domain.NewConversationState("s1")
	ctx := context.Background()

	router.Respond(ctx, "nearest village x = 5", "", state)
	router.Respond(ctx, "x = 99 z = 7", "", state)

	assert.Equal(t, "5", state.CollectedSlots[SlotX])
	assert.Equal(t, "7", state.CollectedSlots[SlotZ])

	router.Respond(ctx, "closest village in the nether", "", state)
	assert.Equal(t, domain.IntentNearestLocation, state.PendingIntent)
	assert.Equal(t, "5", state.CollectedSlots[SlotX])
	assert.Equal(t, "nether", state.CollectedSlots[SlotDimension])
}

func TestRouterLocateStructureWithNumericSeed(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestStructure(mock.Anything, ports.LocateQuery{
		Seed: 123, Target: "village", X: 5, Z: -20, Dimension: "overworld",
	}).Return(&domain.Location{Name: "village", Dimension: "overworld", X: 100, Z: -50, DistanceBlocks: 12.2}, nil).Once()

	router := NewIntentRouter(RouterDeps{Locator: NewLocatorAssistant(locator, nil, zap.NewNop())})
	state := domain.NewConversationState("s1")

	reply := router.Respond(context.Background(), "nearest village x 5 z -20 overworld seed 123", "", state)
	assert.Equal(t, "Nearest village is at x=100, z=-50 in the overworld (about 12 blocks away).", reply)
	assert.True(t, state.Idle())
}

func TestRouterLocateBiomeUsesBiomeLocator(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestBiome(mock.Anything, ports.LocateQuery{
		Seed: 9, Target: "cherry_grove", X: 0, Z: 0, Dimension: "overworld",
	}).Return(&domain.Location{Name: "cherry_grove", Dimension: "overworld", X: 640, Z: 32, DistanceBlocks: 640.8}, nil).Once()

	router := NewIntentRouter(RouterDeps{Locator: NewLocatorAssistant(locator, nil, nil)})

	reply := router.Respond(context.Background(), "nearest biome cherry_grove coords 0 0 overworld seed=9", "", nil)
	assert.Equal(t, "Nearest cherry grove is at x=640, z=32 in the overworld (about 641 blocks away).", reply)
}

func TestRouterLocateMissingSeedKeepsProgress(t *testing.T) {
	seeds := mocks.NewMockSeedStatusProvider(t)
	seeds.EXPECT().SeedStatus(mock.Anything).Return(domain.SeedKnowledge{
		Source:              "seedcrackerx-log",
		RequirementsMissing: []string{"Need more structure observations", "Keep SeedCrackerX running"},
	}, nil).Once()

	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestStructure(mock.Anything, ports.LocateQuery{
		Seed: 42, Target: "village", X: 1, Z: 2, Dimension: "overworld",
	}).Return(&domain.Location{Name: "village", Dimension: "overworld", X: 8, Z: 2, DistanceBlocks: 7}, nil).Once()

	router := NewIntentRouter(RouterDeps{Locator: NewLocatorAssistant(locator, seeds, nil)})
	state := domain.NewConversationState("s1")
	ctx := context.Background()

	reply := router.Respond(ctx, "nearest village x 1 z 2 in the overworld, use my cracked seed", "", state)
	assert.Equal(t, "I can't locate village yet: Need more structure observations; Keep SeedCrackerX running", reply)
	assert.Equal(t, domain.IntentNearestLocation, state.PendingIntent)
	assert.Equal(t, map[string]string{
		SlotTarget:    "structure:village",
		SlotX:         "1",
		SlotZ:         "2",
		SlotDimension: "overworld",
	}, state.CollectedSlots)

	reply = router.Respond(ctx, "42", "", state)
	assert.Equal(t, "Nearest village is at x=8, z=2 in the overworld (about 7 blocks away).", reply)
	assert.True(t, state.Idle())
}

func TestRouterLocateWithoutSeedProviderFallsBackToGenericRequirement(t *testing.T) {
	router := NewIntentRouter(RouterDeps{})

	reply := router.Respond(context.Background(), "nearest village x 1 z 2 overworld cracked seed", "", nil)
	assert.Equal(t, "I can't locate village yet: SeedCrackerX log path is not configured", reply)
}

func TestRouterLocatePrefillsFromPlayerAndSeedProviders(t *testing.T) {
	players := mocks.NewMockPlayerContextProvider(t)
	players.EXPECT().CurrentContext(mock.Anything).Return(&domain.PlayerContext{X: 10, Z: 20, Dimension: "overworld"}, nil).Once()

	seeds := mocks.NewMockSeedStatusProvider(t)
	seeds.EXPECT().SeedStatus(mock.Anything).Return(domain.SeedKnowledge{Seed: int64Ptr(777), Confidence: 1}, nil).Once()

	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestStructure(mock.Anything, ports.LocateQuery{
		Seed: 777, Target: "village", X: 10, Z: 20, Dimension: "overworld",
	}).Return(&domain.Location{Name: "village", X: 30, Z: 20, DistanceBlocks: 20}, nil).Once()

	router := NewIntentRouter(RouterDeps{
		Locator: NewLocatorAssistant(locator, seeds, nil),
		Players: players,
	})

	reply := router.Respond(context.Background(), "where is the nearest village", "", nil)
	assert.Equal(t, "Nearest village is at x=30, z=20 in the overworld (about 20 blocks away).", reply)
}

func TestRouterLocateBackendWithoutData(t *testing.T) {
	locator := mocks.NewMockWorldLocator(t)
	locator.EXPECT().NearestStructure(mock.Anything, mock.Anything).Return(nil, nil).Once()

	router := NewIntentRouter(RouterDeps{Locator: NewLocatorAssistant(locator, nil, nil)})
	state := domain.NewConversationState("s1")

	reply := router.Respond(context.Background(), "nearest village x 1 z 2 overworld seed 5", "", state)
	assert.Equal(t, "I can't locate village yet: No structure locator backend returned data; Configure a cubiomes-compatible CLI and MCA_LOCATOR_CUBIOMES_BIN", reply)
	assert.True(t, state.Idle())
}

func TestRouterLatestResult(t *testing.T) {
	tests := []struct {
		name   string
		recent []domain.CommandJob
		want   string
	}{
		{name: "none", want: "No command results are available yet."},
		{
			name:   "failed",
			recent: []domain.CommandJob{{Command: "/op me", Status: domain.JobStatusFailed, Error: "RconError: denied (attempt 2 of 2)"}},
			want:   "Latest command `/op me` is failed: RconError: denied (attempt 2 of 2)",
		},
		{
			name:   "with output",
			recent: []domain.CommandJob{{Command: "/time set day", Status: domain.JobStatusSucceeded, Output: "executed: /time set day"}},
			want:   "Latest command `/time set day` is succeeded. Output: executed: /time set day",
		},
		{
			name:   "without output",
			recent: []domain.CommandJob{{Command: "/say hi", Status: domain.JobStatusSucceeded}},
			want:   "Latest command `/say hi` is succeeded. Output: no output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewIntentRouter(RouterDeps{Jobs: &recordingQueue{recent: tt.recent}})
			assert.Equal(t, tt.want, router.Respond(context.Background(), "what is the latest command result", "", nil))
		})
	}
}

func TestRouterObjectivePicksHighestPriorityFirstOnTies(t *testing.T) {
	facts := domain.WorldFacts{Biome: "plains", DayTime: intPtr(14000)}
	world := mocks.NewMockWorldInspector(t)
	world.EXPECT().Inspect(mock.Anything).Return(facts, nil).Once()

	recommender := mocks.NewMockRecommender(t)
	recommender.EXPECT().Suggest(mock.Anything, facts, "beat the dragon").Return([]domain.Recommendation{
		{Title: "Explore", Rationale: "look around", Priority: 10},
		{Title: "Shelter", Rationale: "build a shelter before mobs spawn", Priority: 90},
		{Title: "Sleep", Rationale: "find a bed", Priority: 90},
	}, nil).Once()

	router := NewIntentRouter(RouterDeps{World: world, Recommender: recommender})

	reply := router.Respond(context.Background(), "what should I do next", "beat the dragon", nil)
	assert.Equal(t, "Current objective: Shelter. Next best action: build a shelter before mobs spawn", reply)
}

func TestRouterObjectiveWithoutRecommendations(t *testing.T) {
	recommender := mocks.NewMockRecommender(t)
	recommender.EXPECT().Suggest(mock.Anything, domain.WorldFacts{}, "").Return(nil, nil).Once()

	router := NewIntentRouter(RouterDeps{Recommender: recommender})
	assert.Equal(t, msgNoRecommendation, router.Respond(context.Background(), "current objective", "", nil))
}

func TestRouterTopicChangeClearsPendingIntent(t *testing.T) {
	queue := &recordingQueue{}
	router := NewIntentRouter(RouterDeps{Jobs: queue})
	state := domain.NewConversationState("s1")
	ctx := context.Background()

	router.Handle(ctx, Turn{Intent: domain.VoiceIntent{Type: domain.IntentRunCommand}}, state)
	require.False(t, state.Idle())

	reply := router.Respond(ctx, "last command result please", "", state)
	assert.Equal(t, msgNoResults, reply)
	assert.True(t, state.Idle())
	assert.Empty(t, queue.submitted)
}

func TestRouterLoadSchematic(t *testing.T) {
	loader := mocks.NewMockSchematicLoader(t)
	loader.EXPECT().Load(mock.Anything, "castle.schem").Return(domain.Schematic{Path: "castle.schem", BlockCount: intPtr(42)}, nil).Once()
	loader.EXPECT().Load(mock.Anything, "builds/raw.litematic").Return(domain.Schematic{Path: "builds/raw.litematic"}, nil).Once()
	loader.EXPECT().Load(mock.Anything, "missing.schem").Return(domain.Schematic{}, fmt.Errorf("load missing.schem: %w", domain.ErrSchematicNotFound)).Once()

	router := NewIntentRouter(RouterDeps{Schematics: loader})
	ctx := context.Background()

	assert.Equal(t, "Loaded schematic from castle.schem with 42 blocks.", router.Respond(ctx, "load schematic castle.schem", "", nil))
	assert.Equal(t, "Loaded schematic from builds/raw.litematic.", router.Respond(ctx, "open builds/raw.litematic", "", nil))
	assert.Equal(t, "I could not find a schematic at missing.schem.", router.Respond(ctx, "import missing.schem", "", nil))
}

func TestRouterLoadSchematicAsksForPath(t *testing.T) {
	router := NewIntentRouter(RouterDeps{})
	state := domain.NewConversationState("s1")

	reply := router.Handle(context.Background(), Turn{Intent: domain.VoiceIntent{Type: domain.IntentLoadSchematic}}, state)
	assert.Equal(t, "What schematic file path should I load?", reply)

	reply = router.Respond(context.Background(), "the blue one", "", state)
	assert.Equal(t, "What schematic file path should I load?", reply)
	assert.Equal(t, domain.IntentLoadSchematic, state.PendingIntent)
}

func TestRouterUnknownIntent(t *testing.T) {
	router := NewIntentRouter(RouterDeps{})

	assert.Equal(t, "I could not map that phrase to a known intent.", router.Respond(context.Background(), "sing a song", "", nil))

	state := domain.NewConversationState("s1")
	assert.Equal(t, msgUnknownIntent, router.Respond(context.Background(), "", "", state))
	assert.True(t, state.Idle())
}
