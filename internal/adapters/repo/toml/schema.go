package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported conversations schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	SessionID      string            `toml:"session_id"`
	PendingIntent  string            `toml:"pending_intent,omitempty"`
	RequiredSlots  []string          `toml:"required_slots,omitempty"`
	CollectedSlots map[string]string `toml:"collected_slots,omitempty"`
	LastQuestion   string            `toml:"last_question,omitempty"`
	UpdatedAt      string            `toml:"updated_at"`
}
