package ports

import "context"

// GameCommandAdapter delivers one command to the running game. An empty
// string with a nil error is a success with no captured output.
type GameCommandAdapter interface {
	Send(ctx context.Context, command string) (string, error)
}
