package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

const (
	PriorityObjective = 100
	PriorityShelter   = 90
	PriorityCrackSeed = 60
	PriorityExplore   = 10
)

// Rules is a fixed rule set over world facts. Recommendations come back in
// rule order; callers pick by priority.
type Rules struct{}

var _ ports.Recommender = Rules{}

func (Rules) Suggest(ctx context.Context, facts domain.WorldFacts, objective string) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var recommendations []domain.Recommendation

	if objective = strings.TrimSpace(objective); objective != "" {
		recommendations = append(recommendations, domain.Recommendation{
			Title:     objective,
			Rationale: fmt.Sprintf("Keep working toward %s", objective),
			Priority:  PriorityObjective,
		})
	}

	if facts.Night() {
		recommendations = append(recommendations, domain.Recommendation{
			Title:     "Find shelter",
			Rationale: "It is night, so build or reach a shelter before mobs spawn",
			Priority:  PriorityShelter,
		})
	}

	if facts.Seed == nil {
		recommendations = append(recommendations, domain.Recommendation{
			Title:     "Crack the world seed",
			Rationale: "Keep SeedCrackerX running while you explore so structure lookups become available",
			Priority:  PriorityCrackSeed,
		})
	}

	if len(recommendations) == 0 {
		rationale := "Explore nearby chunks to gather resources"
		if facts.NearestStructure != "" {
			rationale = fmt.Sprintf("Head for the nearby %s and gather resources on the way", facts.NearestStructure)
		}
		recommendations = append(recommendations, domain.Recommendation{
			Title:     "Explore",
			Rationale: rationale,
			Priority:  PriorityExplore,
		})
	}

	return recommendations, nil
}
