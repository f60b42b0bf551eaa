package seed

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
)

const Source = "seedcrackerx"

var (
	seedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:cracked\s+seed|seed)\s*[:=]\s*(-?\d+)`),
		regexp.MustCompile(`(?i)seed\s+found\s*[:=]\s*(-?\d+)`),
	}
	missingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)missing\s*[:=]\s*(.+)`),
		regexp.MustCompile(`(?i)still\s+need\s*[:=]\s*(.+)`),
		regexp.MustCompile(`(?i)not\s+enough\s+data\s*[:=]\s*(.+)`),
	}
	candidatePattern   = regexp.MustCompile(`(?i)(?:candidates?|possible seeds?)\s*[:=]\s*(\d+)`)
	observationPattern = regexp.MustCompile(`(?i)(?:observations?|pillars?|structures?)\s*[:=]\s*(\d+)`)
)

var defaultAdvice = []string{
	"Capture additional structure observations in SeedCrackerX",
	"Let SeedCrackerX run longer while exploring distinct chunks",
}

// Analyze reads SeedCrackerX output. A reported seed wins; otherwise the
// result lists what the cracker still needs.
func Analyze(text string) domain.SeedKnowledge {
	details := countDetails(text)

	for _, pattern := range seedPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}

		return domain.SeedKnowledge{
			Seed:                &value,
			Confidence:          1,
			Source:              Source,
			RequirementsMissing: []string{},
			Details:             details,
		}
	}

	return domain.SeedKnowledge{
		Source:              Source,
		RequirementsMissing: missingRequirements(text),
		Details:             details,
	}
}

func countDetails(text string) map[string]int {
	details := map[string]int{}
	if match := candidatePattern.FindStringSubmatch(text); match != nil {
		if count, err := strconv.Atoi(match[1]); err == nil {
			details["candidate_count"] = count
		}
	}
	if match := observationPattern.FindStringSubmatch(text); match != nil {
		if count, err := strconv.Atoi(match[1]); err == nil {
			details["observation_count"] = count
		}
	}
	return details
}

func missingRequirements(text string) []string {
	var missing []string
	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range missingPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			for _, item := range strings.Split(match[1], ",") {
				item = strings.Trim(strings.TrimSpace(item), " .")
				if item != "" {
					missing = append(missing, item)
				}
			}
		}
	}

	if len(missing) == 0 {
		return slices.Clone(defaultAdvice)
	}

	slices.Sort(missing)
	return slices.Compact(missing)
}
