package application

import (
	"regexp"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
)

var (
	runCommandPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:run|execute|do)\s+(?:minecraft\s+)?command\s+(.+)$`),
		regexp.MustCompile(`(?i)^(?:run|execute)\s+(.+)$`),
	}
	loadSchematicPattern = regexp.MustCompile(`(?i)^(?:load|open|import)\s+(?:schematic\s+)?(.+)$`)
	nearestWordPattern   = regexp.MustCompile(`\b(?:nearest|closest)\b`)
)

var (
	latestResultPhrases = []string{
		"latest command result",
		"last command result",
		"what happened with my last command",
		"status of last command",
	}
	objectivePhrases = []string{
		"current objective",
		"next best action",
		"what should i do next",
		"what is my objective",
	}
)

// IntentParser classifies a single utterance. It keeps no state.
type IntentParser struct{}

func NewIntentParser() IntentParser {
	return IntentParser{}
}

func (IntentParser) Parse(utterance string) domain.VoiceIntent {
	text := normalizeUtterance(utterance)
	if text == "" {
		return domain.VoiceIntent{Type: domain.IntentUnknown}
	}
	lowered := strings.ToLower(text)

	for _, pattern := range runCommandPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return domain.VoiceIntent{Type: domain.IntentRunCommand, Argument: strings.TrimSpace(match[1])}
		}
	}

	if containsAny(lowered, latestResultPhrases) {
		return domain.VoiceIntent{Type: domain.IntentLatestCommandResult}
	}
	if nearestWordPattern.MatchString(lowered) {
		return domain.VoiceIntent{Type: domain.IntentNearestLocation}
	}
	if containsAny(lowered, objectivePhrases) {
		return domain.VoiceIntent{Type: domain.IntentCurrentObjective}
	}

	if match := loadSchematicPattern.FindStringSubmatch(text); match != nil {
		return domain.VoiceIntent{Type: domain.IntentLoadSchematic, Argument: stripQuotes(match[1])}
	}

	return domain.VoiceIntent{Type: domain.IntentUnknown}
}

func normalizeUtterance(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func stripQuotes(text string) string {
	return strings.Trim(strings.TrimSpace(text), `"'`)
}
