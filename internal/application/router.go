package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"go.uber.org/zap"
)

const (
	msgMissingCommand    = "I did not catch the Minecraft command to run."
	msgQueueFull         = "The command queue is full right now. Try again in a moment."
	msgNoResults         = "No command results are available yet."
	msgNoRecommendation  = "I have no next action recommendation right now."
	msgMissingPath       = "Please specify a schematic path to load."
	msgUnknownIntent     = "I could not map that phrase to a known intent."
	msgSchematicDisabled = "Schematic loading is not configured."
)

// JobQueue is the part of CommandRuntime the router needs.
type JobQueue interface {
	Submit(command string) (domain.JobID, error)
	ListRecent(ctx context.Context, limit int) ([]domain.CommandJob, error)
}

type Turn struct {
	Intent    domain.VoiceIntent
	Utterance string
	Objective string
}

type RouterDeps struct {
	Jobs        JobQueue
	Locator     *LocatorAssistant
	Players     ports.PlayerContextProvider
	World       ports.WorldInspector
	Recommender ports.Recommender
	Schematics  ports.SchematicLoader
	Logger      *zap.Logger
}

// IntentRouter drives the slot-filling dialogue and executes resolved intents.
type IntentRouter struct {
	parser      IntentParser
	jobs        JobQueue
	locator     *LocatorAssistant
	players     ports.PlayerContextProvider
	world       ports.WorldInspector
	recommender ports.Recommender
	schematics  ports.SchematicLoader
	logger      *zap.Logger
}

func NewIntentRouter(deps RouterDeps) *IntentRouter {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locator := deps.Locator
	if locator == nil {
		locator = NewLocatorAssistant(nil, nil, logger)
	}

	return &IntentRouter{
		parser:      NewIntentParser(),
		jobs:        deps.Jobs,
		locator:     locator,
		players:     deps.Players,
		world:       deps.World,
		recommender: deps.Recommender,
		schematics:  deps.Schematics,
		logger:      logger,
	}
}

// Respond classifies utterance and handles it against state.
func (r *IntentRouter) Respond(ctx context.Context, utterance, objective string, state *domain.ConversationState) string {
	return r.Handle(ctx, Turn{
		Intent:    r.parser.Parse(utterance),
		Utterance: utterance,
		Objective: objective,
	}, state)
}

// Handle advances the dialogue by one turn and returns the reply. A nil state
// runs the turn against a throwaway state.
func (r *IntentRouter) Handle(ctx context.Context, turn Turn, state *domain.ConversationState) string {
	if state == nil {
		state = domain.NewConversationState("")
	}

	intent := turn.Intent
	text := turn.Utterance
	if text == "" {
		text = intent.Argument
	}

	switch {
	case intent.Type.Known():
		required := RequiredSlots(intent.Type)
		if len(required) == 0 {
			if !state.Idle() {
				r.logger.Debug("dialogue topic change", zap.String("dropped_intent", string(state.PendingIntent)))
			}
			state.Clear()
			return r.execute(ctx, intent.Type, nil, turn.Objective)
		}

		if state.PendingIntent != intent.Type {
			state.Begin(intent.Type, required)
		}
		if intent.Argument != "" {
			state.Merge(map[string]string{argumentSlot(intent.Type): intent.Argument})
		}
		state.Merge(ExtractSlots(intent.Type, text))
		r.prefill(ctx, state, true)
	case !state.Idle():
		asked := ""
		if missing := state.MissingSlots(); len(missing) > 0 {
			asked = missing[0]
		}
		state.Merge(ExtractAnswer(state.PendingIntent, asked, text))
		r.prefill(ctx, state, false)
	default:
		return msgUnknownIntent
	}

	if missing := state.MissingSlots(); len(missing) > 0 {
		question := QuestionForSlot(missing[0])
		state.LastQuestion = question
		return question
	}

	return r.resolve(ctx, state, turn.Objective)
}

func (r *IntentRouter) resolve(ctx context.Context, state *domain.ConversationState, objective string) string {
	pending := state.PendingIntent
	slots := make(map[string]string, len(state.CollectedSlots))
	for key, value := range state.CollectedSlots {
		slots[key] = value
	}

	if pending == domain.IntentNearestLocation {
		reply, retry := r.locate(ctx, slots)
		if len(retry) > 0 {
			for _, slot := range retry {
				state.Forget(slot)
			}
			state.LastQuestion = ""
			return reply
		}
		state.Clear()
		return reply
	}

	state.Clear()
	return r.execute(ctx, pending, slots, objective)
}

func (r *IntentRouter) execute(ctx context.Context, intent domain.IntentType, slots map[string]string, objective string) string {
	switch intent {
	case domain.IntentRunCommand:
		return r.runCommand(slots[SlotCommand])
	case domain.IntentLatestCommandResult:
		return r.latestResult(ctx)
	case domain.IntentNearestLocation:
		reply, _ := r.locate(ctx, slots)
		return reply
	case domain.IntentCurrentObjective:
		return r.currentObjective(ctx, objective)
	case domain.IntentLoadSchematic:
		return r.loadSchematic(ctx, slots[SlotPath])
	case domain.IntentUnknown:
		return msgUnknownIntent
	default:
		return msgUnknownIntent
	}
}

func (r *IntentRouter) runCommand(command string) string {
	command = strings.TrimSpace(command)
	if command == "" || r.jobs == nil {
		return msgMissingCommand
	}

	id, err := r.jobs.Submit(command)
	if err != nil {
		if errors.Is(err, domain.ErrQueueFull) {
			return msgQueueFull
		}
		r.logger.Warn("submit command", zap.String("command", command), zap.Error(err))
		return fmt.Sprintf("I could not queue command `%s`: %v", command, err)
	}

	return fmt.Sprintf("Queued command `%s` as job %s.", command, id)
}

func (r *IntentRouter) latestResult(ctx context.Context) string {
	if r.jobs == nil {
		return msgNoResults
	}

	jobs, err := r.jobs.ListRecent(ctx, 1)
	if err != nil {
		r.logger.Warn("list recent jobs", zap.Error(err))
		return fmt.Sprintf("I could not read the command history: %v", err)
	}
	if len(jobs) == 0 {
		return msgNoResults
	}

	latest := jobs[0]
	if latest.Error != "" {
		return fmt.Sprintf("Latest command `%s` is %s: %s", latest.Command, latest.Status, latest.Error)
	}

	output := latest.Output
	if output == "" {
		output = "no output"
	}
	return fmt.Sprintf("Latest command `%s` is %s. Output: %s", latest.Command, latest.Status, output)
}

// locate returns the reply and the slots that must be collected again before
// a retry can succeed.
func (r *IntentRouter) locate(ctx context.Context, slots map[string]string) (string, []string) {
	kind, name := parseTarget(slots[SlotTarget])
	label := strings.ReplaceAll(name, "_", " ")

	x, err := parseCoordinate(SlotX, slots[SlotX])
	if err != nil {
		return fmt.Sprintf("I can't locate %s yet: %v", label, err), []string{SlotX}
	}
	z, err := parseCoordinate(SlotZ, slots[SlotZ])
	if err != nil {
		return fmt.Sprintf("I can't locate %s yet: %v", label, err), []string{SlotZ}
	}

	req := LocateRequest{
		Target:    name,
		X:         x,
		Z:         z,
		Dimension: slots[SlotDimension],
	}

	source := slots[SlotSeedSource]
	if seed, err := strconv.ParseInt(source, 10, 64); err == nil {
		req.Seed = &seed
	} else {
		status := r.locator.SeedStatus(ctx)
		req.SeedStatus = &status
		req.Seed = status.Seed
	}

	var (
		location *domain.Location
		missing  []string
	)
	if kind == "biome" {
		location, missing = r.locator.NearestBiome(ctx, req)
	} else {
		location, missing = r.locator.NearestStructure(ctx, req)
	}

	if len(missing) > 0 {
		reply := fmt.Sprintf("I can't locate %s yet: %s", label, strings.Join(missing, "; "))
		if req.Seed == nil {
			return reply, []string{SlotSeedSource}
		}
		return reply, nil
	}

	return formatLocation(label, location), nil
}

func formatLocation(label string, location *domain.Location) string {
	dimension := location.Dimension
	if dimension == "" {
		dimension = "overworld"
	}

	return fmt.Sprintf("Nearest %s is at x=%d, z=%d in the %s (about %d blocks away).",
		label, location.X, location.Z, dimension, int64(math.Round(location.DistanceBlocks)))
}

func (r *IntentRouter) currentObjective(ctx context.Context, objective string) string {
	var facts domain.WorldFacts
	if r.world != nil {
		inspected, err := r.world.Inspect(ctx)
		if err != nil {
			r.logger.Debug("inspect world", zap.Error(err))
		} else {
			facts = inspected
		}
	}

	if r.recommender == nil {
		return msgNoRecommendation
	}

	recommendations, err := r.recommender.Suggest(ctx, facts, objective)
	if err != nil {
		r.logger.Warn("suggest next action", zap.Error(err))
		return msgNoRecommendation
	}
	if len(recommendations) == 0 {
		return msgNoRecommendation
	}

	best := recommendations[0]
	for _, candidate := range recommendations[1:] {
		if candidate.Priority > best.Priority {
			best = candidate
		}
	}

	return fmt.Sprintf("Current objective: %s. Next best action: %s", best.Title, best.Rationale)
}

func (r *IntentRouter) loadSchematic(ctx context.Context, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return msgMissingPath
	}
	if r.schematics == nil {
		return msgSchematicDisabled
	}

	schematic, err := r.schematics.Load(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrSchematicNotFound) {
			return fmt.Sprintf("I could not find a schematic at %s.", path)
		}
		r.logger.Warn("load schematic", zap.String("path", path), zap.Error(err))
		return fmt.Sprintf("I could not load schematic %s: %v", path, err)
	}

	if schematic.BlockCount == nil {
		return fmt.Sprintf("Loaded schematic from %s.", path)
	}
	return fmt.Sprintf("Loaded schematic from %s with %d blocks.", path, *schematic.BlockCount)
}

// prefill completes locate slots from live collaborators. The seed source is
// only defaulted when an intent is first raised so that a rejected seed is
// asked for again instead of being silently reused.
func (r *IntentRouter) prefill(ctx context.Context, state *domain.ConversationState, defaultSeed bool) {
	if state.PendingIntent != domain.IntentNearestLocation {
		return
	}

	missing := state.MissingSlots()
	needsPosition := false
	for _, slot := range missing {
		if slot == SlotX || slot == SlotZ || slot == SlotDimension {
			needsPosition = true
		}
	}

	if needsPosition && r.players != nil {
		player, err := r.players.CurrentContext(ctx)
		if err != nil {
			r.logger.Debug("read player context", zap.Error(err))
		} else if player != nil {
			values := map[string]string{
				SlotX: strconv.Itoa(player.X),
				SlotZ: strconv.Itoa(player.Z),
			}
			if player.Dimension != "" {
				values[SlotDimension] = player.Dimension
			}
			state.Merge(values)
		}
	}

	if defaultSeed && r.locator.HasSeedProvider() {
		state.Merge(map[string]string{SlotSeedSource: seedSourceCurrent})
	}
}

func argumentSlot(intent domain.IntentType) string {
	if intent == domain.IntentRunCommand {
		return SlotCommand
	}
	return SlotPath
}

func parseCoordinate(slot, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a whole number", domain.ErrMissingSlotValue, slot, raw)
	}
	return value, nil
}
