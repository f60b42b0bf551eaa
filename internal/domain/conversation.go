package domain

import (
	"slices"
	"time"
)

// ConversationState tracks at most one pending multi-turn request.
// When PendingIntent is empty, RequiredSlots and CollectedSlots are empty.
type ConversationState struct {
	SessionID      string
	PendingIntent  IntentType
	RequiredSlots  []string
	CollectedSlots map[string]string
	LastQuestion   string
	UpdatedAt      time.Time
}

func NewConversationState(sessionID string) *ConversationState {
	return &ConversationState{SessionID: sessionID, CollectedSlots: map[string]string{}}
}

func (s *ConversationState) Idle() bool {
	return s.PendingIntent == ""
}

func (s *ConversationState) Begin(intent IntentType, requiredSlots []string) {
	s.PendingIntent = intent
	s.RequiredSlots = slices.Clone(requiredSlots)
	s.CollectedSlots = map[string]string{}
	s.LastQuestion = ""
}

// Merge records values for required slots that are still missing. Values that
// were already collected are kept.
func (s *ConversationState) Merge(values map[string]string) {
	if s.Idle() {
		return
	}
	if s.CollectedSlots == nil {
		s.CollectedSlots = map[string]string{}
	}

	for _, slot := range s.RequiredSlots {
		value, ok := values[slot]
		if !ok || value == "" {
			continue
		}
		if _, exists := s.CollectedSlots[slot]; exists {
			continue
		}
		s.CollectedSlots[slot] = value
	}
}

// MissingSlots returns unmet slots in schema order.
func (s *ConversationState) MissingSlots() []string {
	missing := make([]string, 0, len(s.RequiredSlots))
	for _, slot := range s.RequiredSlots {
		if _, ok := s.CollectedSlots[slot]; !ok {
			missing = append(missing, slot)
		}
	}

	return missing
}

func (s *ConversationState) Complete() bool {
	return !s.Idle() && len(s.MissingSlots()) == 0
}

func (s *ConversationState) Clear() {
	s.PendingIntent = ""
	s.RequiredSlots = nil
	s.CollectedSlots = map[string]string{}
	s.LastQuestion = ""
}

// Forget drops a collected slot so it is asked for again.
func (s *ConversationState) Forget(slot string) {
	delete(s.CollectedSlots, slot)
}
