package application

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
)

const (
	SlotCommand    = "command"
	SlotTarget     = "target"
	SlotX          = "x"
	SlotZ          = "z"
	SlotDimension  = "dimension"
	SlotSeedSource = "seed_source"
	SlotPath       = "path"
)

const (
	seedSourceCracked = "cracked seed"
	seedSourceCurrent = "current seed"
)

var intentSlotSchema = map[domain.IntentType][]string{
	domain.IntentRunCommand:      {SlotCommand},
	domain.IntentNearestLocation: {SlotTarget, SlotX, SlotZ, SlotDimension, SlotSeedSource},
	domain.IntentLoadSchematic:   {SlotPath},
}

var slotQuestions = map[string]string{
	SlotCommand:    "What Minecraft command should I run?",
	SlotTarget:     "What should I locate? Name a structure like village or a biome like cherry_grove.",
	SlotX:          "I need your current X coordinate. What is it?",
	SlotZ:          "I also need your current Z coordinate. What is it?",
	SlotDimension:  "Which dimension are you in: overworld, nether, or end?",
	SlotSeedSource: "Please provide the world seed, or tell me to use your cracked/current seed.",
	SlotPath:       "What schematic file path should I load?",
}

// RequiredSlots returns the ordered slot schema of an intent. Intents without
// slots return nil.
func RequiredSlots(intent domain.IntentType) []string {
	return slices.Clone(intentSlotSchema[intent])
}

func QuestionForSlot(slot string) string {
	if question, ok := slotQuestions[slot]; ok {
		return question
	}
	return fmt.Sprintf("Please provide %s.", slot)
}

var (
	coordXPattern     = regexp.MustCompile(`(?i)\bx\s*(?:=|is)?\s*(-?\d+)\b`)
	coordZPattern     = regexp.MustCompile(`(?i)\bz\s*(?:=|is)?\s*(-?\d+)\b`)
	coordPairPattern  = regexp.MustCompile(`(?i)(?:coords?|coordinates|position)\s*(?:are|is|:)?\s*(-?\d+)\s*[ ,]+\s*(-?\d+)`)
	seedNumberPattern = regexp.MustCompile(`(?i)\bseed\s*(?:=|is)?\s*(-?\d+)\b`)
	bareNumberPattern = regexp.MustCompile(`^-?\d+$`)
	dimensionPattern  = regexp.MustCompile(`\b(overworld|nether|end)\b`)
	explicitTarget    = regexp.MustCompile(`(?i)\b(?:nearest|closest)\s+(biome|structure)\s+([a-z0-9_:-]+)`)
	wordPattern       = regexp.MustCompile(`[a-z0-9_]+`)
	schematicSuffixes = []string{".schem", ".schematic", ".litematic", ".nbt"}
)

// structureAliases maps spoken names to structure ids.
var structureAliases = map[string]string{
	"village":             "village",
	"stronghold":          "stronghold",
	"fortress":            "fortress",
	"nether_fortress":     "fortress",
	"bastion":             "bastion_remnant",
	"bastion_remnant":     "bastion_remnant",
	"desert_pyramid":      "desert_pyramid",
	"desert_temple":       "desert_pyramid",
	"jungle_pyramid":      "jungle_pyramid",
	"jungle_temple":       "jungle_pyramid",
	"igloo":               "igloo",
	"swamp_hut":           "swamp_hut",
	"witch_hut":           "swamp_hut",
	"monument":            "ocean_monument",
	"ocean_monument":      "ocean_monument",
	"mansion":             "woodland_mansion",
	"woodland_mansion":    "woodland_mansion",
	"shipwreck":           "shipwreck",
	"ruined_portal":       "ruined_portal",
	"outpost":             "pillager_outpost",
	"pillager_outpost":    "pillager_outpost",
	"ancient_city":        "ancient_city",
	"trail_ruins":         "trail_ruins",
	"trial_chambers":      "trial_chambers",
	"end_city":            "end_city",
	"mineshaft":           "mineshaft",
	"buried_treasure":     "buried_treasure",
	"ocean_ruin":          "ocean_ruin",
	"ocean_ruins":         "ocean_ruin",
	"nether_fossil":       "nether_fossil",
	"abandoned_mineshaft": "mineshaft",
}

var knownBiomes = map[string]struct{}{
	"plains": {}, "sunflower_plains": {}, "snowy_plains": {}, "ice_spikes": {},
	"desert": {}, "savanna": {}, "savanna_plateau": {}, "windswept_savanna": {},
	"forest": {}, "flower_forest": {}, "birch_forest": {}, "dark_forest": {},
	"old_growth_birch_forest": {}, "taiga": {}, "snowy_taiga": {}, "old_growth_pine_taiga": {},
	"jungle": {}, "bamboo_jungle": {}, "sparse_jungle": {}, "swamp": {}, "mangrove_swamp": {},
	"badlands": {}, "eroded_badlands": {}, "wooded_badlands": {},
	"cherry_grove": {}, "meadow": {}, "grove": {}, "snowy_slopes": {},
	"jagged_peaks": {}, "frozen_peaks": {}, "stony_peaks": {},
	"mushroom_fields": {}, "beach": {}, "snowy_beach": {}, "stony_shore": {}, "river": {}, "frozen_river": {},
	"ocean": {}, "deep_ocean": {}, "warm_ocean": {}, "lukewarm_ocean": {}, "cold_ocean": {}, "frozen_ocean": {},
	"lush_caves": {}, "dripstone_caves": {}, "deep_dark": {},
	"nether_wastes": {}, "soul_sand_valley": {}, "crimson_forest": {}, "warped_forest": {}, "basalt_deltas": {},
	"the_end": {}, "end_highlands": {}, "end_midlands": {}, "small_end_islands": {}, "end_barrens": {},
}

// ExtractSlots pulls slot values for intent out of free-form text. Only
// values that are present in the text are returned.
func ExtractSlots(intent domain.IntentType, text string) map[string]string {
	normalized := normalizeUtterance(text)
	lowered := strings.ToLower(normalized)
	slots := map[string]string{}

	switch intent {
	case domain.IntentRunCommand:
		if command := extractCommand(normalized); command != "" {
			slots[SlotCommand] = command
		}
	case domain.IntentLoadSchematic:
		if path := extractPath(normalized); path != "" {
			slots[SlotPath] = path
		}
	case domain.IntentNearestLocation:
		extractLocateSlots(normalized, lowered, slots)
	case domain.IntentLatestCommandResult, domain.IntentCurrentObjective, domain.IntentUnknown:
	}

	return slots
}

// ExtractAnswer extracts slot values from a follow-up turn. A bare number
// answers the numeric slot that was asked for last.
func ExtractAnswer(intent domain.IntentType, askedSlot, text string) map[string]string {
	slots := ExtractSlots(intent, text)

	answer := strings.TrimSpace(text)
	if bareNumberPattern.MatchString(answer) {
		switch askedSlot {
		case SlotX, SlotZ, SlotSeedSource:
			slots[askedSlot] = answer
		}
	}

	return slots
}

func extractLocateSlots(normalized, lowered string, slots map[string]string) {
	if target := extractTarget(normalized, lowered); target != "" {
		slots[SlotTarget] = target
	}

	if match := coordXPattern.FindStringSubmatch(normalized); match != nil {
		slots[SlotX] = match[1]
	}
	if match := coordZPattern.FindStringSubmatch(normalized); match != nil {
		slots[SlotZ] = match[1]
	}
	if match := coordPairPattern.FindStringSubmatch(normalized); match != nil {
		if _, ok := slots[SlotX]; !ok {
			slots[SlotX] = match[1]
		}
		if _, ok := slots[SlotZ]; !ok {
			slots[SlotZ] = match[2]
		}
	}

	if match := dimensionPattern.FindStringSubmatch(lowered); match != nil {
		slots[SlotDimension] = match[1]
	}

	switch {
	case seedNumberPattern.MatchString(normalized):
		slots[SlotSeedSource] = seedNumberPattern.FindStringSubmatch(normalized)[1]
	case strings.Contains(lowered, seedSourceCracked):
		slots[SlotSeedSource] = seedSourceCracked
	case strings.Contains(lowered, seedSourceCurrent), strings.Contains(lowered, "my seed"):
		slots[SlotSeedSource] = seedSourceCurrent
	}
}

func extractTarget(normalized, lowered string) string {
	if match := explicitTarget.FindStringSubmatch(normalized); match != nil {
		return strings.ToLower(match[1]) + ":" + strings.ToLower(match[2])
	}

	words := wordPattern.FindAllString(lowered, -1)
	for i := range words {
		for n := min(3, len(words)-i); n >= 1; n-- {
			name := strings.Join(words[i:i+n], "_")
			if structure, ok := structureAliases[name]; ok {
				return "structure:" + structure
			}
			if _, ok := knownBiomes[name]; ok {
				return "biome:" + name
			}
		}
	}

	return ""
}

func extractCommand(text string) string {
	for _, pattern := range runCommandPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return strings.TrimSpace(text)
}

func extractPath(text string) string {
	if match := loadSchematicPattern.FindStringSubmatch(text); match != nil {
		return stripQuotes(match[1])
	}

	candidate := stripQuotes(text)
	if strings.Contains(candidate, "/") {
		return candidate
	}
	lowered := strings.ToLower(candidate)
	for _, suffix := range schematicSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return candidate
		}
	}

	return ""
}

// parseTarget splits "structure:village" into its kind and name. A bare name
// is treated as a structure.
func parseTarget(target string) (kind, name string) {
	kind, name, found := strings.Cut(target, ":")
	if !found {
		return "structure", target
	}
	return kind, name
}
