package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusTerminal(t *testing.T) {
	terminal := map[JobStatus]bool{
		JobStatusQueued:    false,
		JobStatusRunning:   false,
		JobStatusSucceeded: true,
		JobStatusFailed:    true,
		JobStatusTimedOut:  true,
	}

	for status, want := range terminal {
		assert.True(t, status.Valid(), status)
		assert.Equal(t, want, status.IsTerminal(), status)
		assert.Equal(t, want, CommandJob{Status: status}.Finished(), status)
	}

	assert.False(t, JobStatus("done").Valid())
	assert.False(t, JobStatus("done").IsTerminal())
}

func TestParseJobStatus(t *testing.T) {
	status, err := ParseJobStatus("timed_out")
	require.NoError(t, err)
	assert.Equal(t, JobStatusTimedOut, status)

	_, err = ParseJobStatus("TIMED_OUT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown job status "TIMED_OUT"`)
}

func TestIntentTypeKnown(t *testing.T) {
	assert.True(t, IntentNearestLocation.Known())
	assert.True(t, IntentUnknown.Valid())
	assert.False(t, IntentUnknown.Known())
	assert.False(t, IntentType("dance").Valid())
}

func TestConversationStateMergeKeepsCollectedValues(t *testing.T) {
	state := NewConversationState("s1")
	require.True(t, state.Idle())

	state.Merge(map[string]string{"command": "/time set day"})
	assert.Empty(t, state.CollectedSlots)

	state.Begin(IntentNearestLocation, []string{"target", "x", "z"})
	state.Merge(map[string]string{"target": "structure:village", "x": "", "radius": "100"})
	state.Merge(map[string]string{"target": "biome:desert", "z": "4"})

	assert.Equal(t, map[string]string{"target": "structure:village", "z": "4"}, state.CollectedSlots)
	assert.Equal(t, []string{"x"}, state.MissingSlots())
	assert.False(t, state.Complete())

	state.Merge(map[string]string{"x": "-3"})
	assert.True(t, state.Complete())

	state.Forget("x")
	assert.Equal(t, []string{"x"}, state.MissingSlots())

	state.LastQuestion = "I need your current X coordinate. What is it?"
	state.Clear()
	assert.True(t, state.Idle())
	assert.Empty(t, state.RequiredSlots)
	assert.Empty(t, state.CollectedSlots)
	assert.Empty(t, state.LastQuestion)
	assert.Equal(t, "s1", state.SessionID)
}

func TestConversationStateBeginCopiesSlots(t *testing.T) {
	required := []string{"command"}
	state := NewConversationState("s1")
	state.Begin(IntentRunCommand, required)

	required[0] = "mutated"
	assert.Equal(t, []string{"command"}, state.RequiredSlots)
}

func TestWorldFactsNight(t *testing.T) {
	at := func(tick int) WorldFacts { return WorldFacts{DayTime: &tick} }

	assert.False(t, WorldFacts{}.Night())
	assert.False(t, at(6000).Night())
	assert.False(t, at(12999).Night())
	assert.True(t, at(13000).Night())
	assert.True(t, at(22999).Night())
	assert.False(t, at(23000).Night())
	assert.True(t, at(24000+18000).Night())
}

func TestSeedKnowledgeCracked(t *testing.T) {
	seed := int64(-42)

	assert.False(t, SeedKnowledge{RequirementsMissing: []string{"more data"}}.Cracked())
	assert.True(t, SeedKnowledge{Seed: &seed}.Cracked())
}
