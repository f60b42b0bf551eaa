package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"slices"
	"strings"

	"github.com/bnema/mc-assistant/internal/ports"
)

var ErrUnavailable = errors.New("game command client unavailable")

type runFunc func(ctx context.Context, bin string, args ...string) (stdout string, stderr string, err error)

// CommandError is returned when the client binary exits unsuccessfully.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("run %q: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("run %q: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Kind() string {
	return "ClientError"
}

// Adapter forwards each command to an external RCON-style client, for
// example `mcrcon -H host -P port -p secret`, appending the command as the
// final argument and returning its stdout.
type Adapter struct {
	bin    string
	args   []string
	prefix string
	run    runFunc
}

var _ ports.GameCommandAdapter = (*Adapter)(nil)

func NewAdapter(bin string, args []string, prefix string) *Adapter {
	return &Adapter{bin: bin, args: slices.Clone(args), prefix: prefix, run: runClient}
}

func (a *Adapter) Send(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	command = a.normalize(command)
	args := append(slices.Clone(a.args), command)

	stdout, stderr, err := a.run(ctx, a.bin, args...)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return "", err
		}
		return "", &CommandError{Command: command, Stderr: stderr, Err: err}
	}

	return strings.TrimRight(stdout, "\r\n"), nil
}

func (a *Adapter) normalize(command string) string {
	command = strings.TrimSpace(command)
	if a.prefix != "" && !strings.HasPrefix(command, a.prefix) {
		command = a.prefix + command
	}
	return command
}

func runClient(ctx context.Context, bin string, args ...string) (string, string, error) {
	path, err := osexec.LookPath(bin)
	if err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s", ErrUnavailable, bin)
		}
		return "", "", fmt.Errorf("locate %s: %w", bin, err)
	}

	cmd := osexec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
