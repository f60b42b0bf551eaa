package ports

import (
	"context"

	"github.com/bnema/mc-assistant/internal/domain"
)

type ConversationRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (domain.ConversationState, error)
	Save(ctx context.Context, state domain.ConversationState) error
	Delete(ctx context.Context, sessionID string) error
}
