package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/mc-assistant/internal/ports"
)

type ListeningMode string

const (
	ListeningPushToTalk      ListeningMode = "push_to_talk"
	ListeningAlwaysListening ListeningMode = "always_listening"
)

type VoiceActivationConfig struct {
	Mode        ListeningMode
	WakeWord    string
	Sensitivity float64
}

func DefaultVoiceActivationConfig() VoiceActivationConfig {
	return VoiceActivationConfig{Mode: ListeningPushToTalk, WakeWord: "assistant", Sensitivity: 0.1}
}

type VoiceInputEvent struct {
	Transcript       string
	Mode             ListeningMode
	WakeWordDetected bool
}

// VoiceInputService gates recognized speech by listening mode, signal level
// and wake word.
type VoiceInputService struct {
	recognizer ports.SpeechRecognizer

	mu     sync.RWMutex
	config VoiceActivationConfig
}

func NewVoiceInputService(recognizer ports.SpeechRecognizer, config VoiceActivationConfig) *VoiceInputService {
	if config.Mode == "" {
		config.Mode = ListeningPushToTalk
	}
	config.WakeWord = strings.ToLower(strings.TrimSpace(config.WakeWord))
	config.Sensitivity = clamp01(config.Sensitivity)

	return &VoiceInputService{recognizer: recognizer, config: config}
}

func (s *VoiceInputService) Config() VoiceActivationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config
}

func (s *VoiceInputService) SetMode(mode ListeningMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.Mode = mode
}

func (s *VoiceInputService) SetWakeWord(wakeWord string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.WakeWord = strings.ToLower(strings.TrimSpace(wakeWord))
}

func (s *VoiceInputService) SetSensitivity(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.Sensitivity = clamp01(threshold)
}

// ProcessAudioChunk transcribes one chunk of 8-bit PCM audio. It returns nil
// when activation, signal level or wake-word checks reject the chunk.
func (s *VoiceInputService) ProcessAudioChunk(ctx context.Context, audio []byte, pushToTalkPressed bool) (*VoiceInputEvent, error) {
	config := s.Config()

	if config.Mode == ListeningPushToTalk && !pushToTalkPressed {
		return nil, nil
	}
	if estimateSignalLevel(audio) < config.Sensitivity {
		return nil, nil
	}
	if s.recognizer == nil {
		return nil, fmt.Errorf("transcribe audio: no speech recognizer configured")
	}

	transcript, err := s.recognizer.Transcribe(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	return s.AcceptTranscript(transcript), nil
}

// AcceptTranscript applies wake-word gating to already recognized text.
func (s *VoiceInputService) AcceptTranscript(transcript string) *VoiceInputEvent {
	config := s.Config()

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil
	}

	detected := config.WakeWord != "" && strings.Contains(strings.ToLower(transcript), config.WakeWord)
	if config.Mode == ListeningAlwaysListening && !detected {
		return nil
	}
	if detected {
		transcript = stripWakeWord(transcript, config.WakeWord)
	}

	return &VoiceInputEvent{Transcript: transcript, Mode: config.Mode, WakeWordDetected: detected}
}

func stripWakeWord(transcript, wakeWord string) string {
	idx := strings.Index(strings.ToLower(transcript), wakeWord)
	if idx < 0 {
		return transcript
	}

	stripped := strings.Trim(transcript[:idx]+transcript[idx+len(wakeWord):], " ,:;.-")
	if stripped == "" {
		return transcript
	}
	return stripped
}

func estimateSignalLevel(audio []byte) float64 {
	if len(audio) == 0 {
		return 0
	}

	total := 0
	for _, sample := range audio {
		centered := int(sample) - 128
		if centered < 0 {
			centered = -centered
		}
		total += centered
	}

	return float64(total) / float64(len(audio)*128)
}

func clamp01(value float64) float64 {
	return max(0, min(1, value))
}

type VoiceOutputConfig struct {
	Enabled  bool
	MaxChars int
}

type VoiceOutputService struct {
	synthesizer ports.SpeechSynthesizer
	output      ports.AudioOutput
	config      VoiceOutputConfig
}

func NewVoiceOutputService(synthesizer ports.SpeechSynthesizer, output ports.AudioOutput, config VoiceOutputConfig) *VoiceOutputService {
	if config.MaxChars <= 0 {
		config.MaxChars = 500
	}

	return &VoiceOutputService{synthesizer: synthesizer, output: output, config: config}
}

// PrepareSpeech normalizes whitespace and truncates to MaxChars runes.
func (s *VoiceOutputService) PrepareSpeech(text string) string {
	normalized := []rune(normalizeUtterance(text))
	if len(normalized) > s.config.MaxChars {
		normalized = normalized[:s.config.MaxChars]
	}
	return string(normalized)
}

// Speak synthesizes and plays text. It returns nil audio when output is
// disabled or there is nothing to say.
func (s *VoiceOutputService) Speak(ctx context.Context, text string) ([]byte, error) {
	if !s.config.Enabled {
		return nil, nil
	}

	speech := s.PrepareSpeech(text)
	if speech == "" {
		return nil, nil
	}

	audio, err := s.synthesizer.Synthesize(ctx, speech)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if err := s.output.Play(ctx, audio); err != nil {
		return nil, fmt.Errorf("play speech: %w", err)
	}

	return audio, nil
}
