package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/mc-assistant/internal/application"
	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSessionID = "default"

func newAskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <utterance...>",
		Short: "Ask the assistant one question",
		Long:  "Ask the assistant one question. Follow-up answers to a clarifying question continue the same session.\n\nNegative numbers such as -5 are read as part of the utterance. Put words that start with a dash after --.",
		// Utterances routinely carry negative coordinates, which pflag would
		// reject as unknown shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAskArgs(args)
			if err != nil {
				return err
			}
			if parsed.help {
				return cmd.Help()
			}
			if parsed.utterance == "" {
				return fmt.Errorf("requires at least 1 arg(s), only received 0")
			}

			a.start(cmd.Context())

			reply, err := a.converse(cmd.Context(), parsed.sessionID, parsed.utterance, parsed.objective)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}

	// Declared for help output only; parseAskArgs reads them.
	cmd.Flags().String("session", defaultSessionID, "Conversation session ID")
	cmd.Flags().String("objective", "", "Current objective used for next-action advice")

	return cmd
}

type askArgs struct {
	sessionID string
	objective string
	utterance string
	verbose   bool
	help      bool
}

// parseAskArgs splits raw ask arguments into flags and utterance words.
func parseAskArgs(args []string) (askArgs, error) {
	parsed := askArgs{sessionID: defaultSessionID}
	words := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		token := args[i]

		switch {
		case token == "--":
			words = append(words, args[i+1:]...)
			i = len(args)
			continue
		case !strings.HasPrefix(token, "-") || token == "-" || isNegativeNumber(token):
			words = append(words, token)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(token, "-"), "=")
		switch name {
		case "v", "verbose":
			parsed.verbose = true
		case "h", "help":
			parsed.help = true
		case "session", "objective":
			if !hasValue {
				if i+1 >= len(args) {
					return askArgs{}, fmt.Errorf("flag needs an argument: --%s", name)
				}
				i++
				value = args[i]
			}
			if name == "session" {
				parsed.sessionID = value
			} else {
				parsed.objective = value
			}
		default:
			return askArgs{}, fmt.Errorf("unknown flag: %s", token)
		}
	}

	parsed.utterance = strings.TrimSpace(strings.Join(words, " "))
	return parsed, nil
}

func isNegativeNumber(token string) bool {
	if !strings.HasPrefix(token, "-") {
		return false
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}

func newChatCmd(a *app) *cobra.Command {
	var (
		sessionID       string
		objective       string
		alwaysListening bool
		wakeWord        string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant line by line",
		Long:  "Read one transcript per line from stdin and answer each. In always-listening mode only lines containing the wake word are answered. Type exit or quit to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if alwaysListening {
				a.voiceInput.SetMode(application.ListeningAlwaysListening)
			}
			if cmd.Flags().Changed("wake-word") {
				a.voiceInput.SetWakeWord(wakeWord)
			}
			a.start(cmd.Context())

			return runChat(cmd, a, sessionID, objective)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", defaultSessionID, "Conversation session ID")
	cmd.Flags().StringVar(&objective, "objective", "", "Current objective used for next-action advice")
	cmd.Flags().BoolVar(&alwaysListening, "always-listening", false, "Only answer lines that contain the wake word")
	cmd.Flags().StringVar(&wakeWord, "wake-word", "", "Wake word (default from voice.wake_word)")

	return cmd
}

func runChat(cmd *cobra.Command, a *app, sessionID, objective string) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		event := a.voiceInput.AcceptTranscript(line)
		if event == nil {
			a.logger.Debug("transcript ignored", zap.String("mode", string(a.voiceInput.Config().Mode)))
			continue
		}

		reply, err := a.converse(cmd.Context(), sessionID, event.Transcript, objective)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, a.voiceOutput.PrepareSpeech(reply)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// converse runs one dialogue turn against the persisted session state.
func (a *app) converse(ctx context.Context, sessionID, utterance, objective string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	existed := true
	loaded, err := a.conversations.GetBySessionID(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrConversationNotFound):
		existed = false
		loaded = *domain.NewConversationState(sessionID)
	case err != nil:
		return "", fmt.Errorf("load conversation %s: %w", sessionID, err)
	}

	state := &loaded
	reply := a.router.Respond(ctx, utterance, objective, state)

	if state.Idle() {
		if existed {
			if err := a.conversations.Delete(ctx, sessionID); err != nil {
				return "", fmt.Errorf("clear conversation %s: %w", sessionID, err)
			}
		}
		return reply, nil
	}

	if err := a.conversations.Save(ctx, *state); err != nil {
		return "", fmt.Errorf("save conversation %s: %w", sessionID, err)
	}
	return reply, nil
}
