package toml

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	conversationsFileMode = 0o600
	conversationsDirMode  = 0o700
	tempFilePattern       = ".conversations-*.toml.tmp"
)

// Repository keeps dialogue state per session in a single TOML file so a
// conversation survives between CLI invocations.
type Repository struct {
	path  string
	clock ports.Clock
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConversationRepository = (*Repository)(nil)

func NewRepository(path string, clock ports.Clock) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("conversations path is empty")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: normalized, clock: clock, mu: lockForPath(normalized)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, state domain.ConversationState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(state.SessionID) == "" {
		return errors.New("conversation session id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	state.UpdatedAt = r.clock.Now()
	encoded := toSchema(state)
	updated := false
	for i := range file.Sessions {
		if file.Sessions[i].SessionID == encoded.SessionID {
			file.Sessions[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Sessions = append(file.Sessions, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (domain.ConversationState, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConversationState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ConversationState{}, err
	}

	for _, entry := range file.Sessions {
		if entry.SessionID == sessionID {
			return fromSchema(entry), nil
		}
	}

	return domain.ConversationState{}, fmt.Errorf("session %q: %w", sessionID, domain.ErrConversationNotFound)
}

func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(file.Sessions, func(entry sessionSchema) bool {
		return entry.SessionID == sessionID
	})
	if len(kept) == len(file.Sessions) {
		return nil
	}
	file.Sessions = kept

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read conversations file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode conversations file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), conversationsDirMode); err != nil {
		return fmt.Errorf("create conversations directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode conversations file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp conversations file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp conversations file: %w", err)
	}

	if err := tempFile.Chmod(conversationsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp conversations file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp conversations file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace conversations file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve conversations path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(state domain.ConversationState) sessionSchema {
	entry := sessionSchema{
		SessionID:     state.SessionID,
		PendingIntent: string(state.PendingIntent),
		LastQuestion:  state.LastQuestion,
		UpdatedAt:     formatTime(state.UpdatedAt),
	}
	if !state.Idle() {
		entry.RequiredSlots = slices.Clone(state.RequiredSlots)
		if len(state.CollectedSlots) > 0 {
			entry.CollectedSlots = maps.Clone(state.CollectedSlots)
		}
	}

	return entry
}

func fromSchema(entry sessionSchema) domain.ConversationState {
	state := domain.ConversationState{
		SessionID:      entry.SessionID,
		PendingIntent:  domain.IntentType(entry.PendingIntent),
		CollectedSlots: map[string]string{},
		LastQuestion:   entry.LastQuestion,
		UpdatedAt:      parseTime(entry.UpdatedAt),
	}
	if state.Idle() {
		return state
	}

	state.RequiredSlots = slices.Clone(entry.RequiredSlots)
	for slot, value := range entry.CollectedSlots {
		state.CollectedSlots[slot] = value
	}

	return state
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
