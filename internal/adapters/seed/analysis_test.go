package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCrackedSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int64
	}{
		{name: "cracked seed", text: "[SeedCracker] Cracked seed: -4172144997902289642", want: -4172144997902289642},
		{name: "plain seed", text: "world seed = 12345", want: 12345},
		{name: "seed found", text: "Seed found : 987", want: 987},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			knowledge := Analyze(tt.text)
			require.True(t, knowledge.Cracked())
			assert.Equal(t, tt.want, *knowledge.Seed)
			assert.Equal(t, 1.0, knowledge.Confidence)
			assert.Equal(t, Source, knowledge.Source)
			assert.Empty(t, knowledge.RequirementsMissing)
		})
	}
}

func TestAnalyzeCollectsDetails(t *testing.T) {
	t.Parallel()

	knowledge := Analyze("Possible seeds: 42\nStructures: 3\nCracked seed: 7")
	require.True(t, knowledge.Cracked())
	assert.Equal(t, map[string]int{"candidate_count": 42, "observation_count": 3}, knowledge.Details)
}

func TestAnalyzeMissingRequirements(t *testing.T) {
	t.Parallel()

	text := "Candidates: 1200\n" +
		"Missing: more end pillars, a buried treasure.\n" +
		"Still need = biome data\n" +
		"missing: a buried treasure\n"

	knowledge := Analyze(text)
	assert.False(t, knowledge.Cracked())
	assert.Equal(t, 0.0, knowledge.Confidence)
	assert.Equal(t, []string{"a buried treasure", "biome data", "more end pillars"}, knowledge.RequirementsMissing)
	assert.Equal(t, map[string]int{"candidate_count": 1200}, knowledge.Details)
}

func TestAnalyzeDefaultAdvice(t *testing.T) {
	t.Parallel()

	knowledge := Analyze("SeedCracker started, waiting for data")
	assert.False(t, knowledge.Cracked())
	assert.Equal(t, defaultAdvice, knowledge.RequirementsMissing)
	assert.Empty(t, knowledge.Details)

	knowledge.RequirementsMissing[0] = "mutated"
	assert.NotEqual(t, "mutated", defaultAdvice[0])
}
