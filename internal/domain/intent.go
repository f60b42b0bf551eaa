package domain

type IntentType string

const (
	IntentRunCommand          IntentType = "run_minecraft_command"
	IntentLatestCommandResult IntentType = "latest_command_result"
	IntentNearestLocation     IntentType = "nearest_biome_or_structure"
	IntentCurrentObjective    IntentType = "current_objective_or_next_action"
	IntentLoadSchematic       IntentType = "load_schematic"
	IntentUnknown             IntentType = "unknown"
)

func (t IntentType) Valid() bool {
	switch t {
	case IntentRunCommand, IntentLatestCommandResult, IntentNearestLocation,
		IntentCurrentObjective, IntentLoadSchematic, IntentUnknown:
		return true
	default:
		return false
	}
}

func (t IntentType) Known() bool {
	return t.Valid() && t != IntentUnknown
}

// VoiceIntent is a classified utterance. Argument carries the trailing free
// text captured at classification time (command text or schematic path).
type VoiceIntent struct {
	Type     IntentType
	Argument string
}
