package echo

import (
	"context"

	"github.com/bnema/mc-assistant/internal/ports"
)

// Adapter acknowledges every command without a running game.
type Adapter struct{}

var _ ports.GameCommandAdapter = Adapter{}

func NewAdapter() Adapter {
	return Adapter{}
}

func (Adapter) Send(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "executed: " + command, nil
}
