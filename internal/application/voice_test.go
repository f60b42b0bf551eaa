package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/mc-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loudChunk() []byte {
	return bytes.Repeat([]byte{255, 0}, 16)
}

func TestVoiceInputPushToTalkRequiresPress(t *testing.T) {
	recognizer := mocks.NewMockSpeechRecognizer(t)
	service := NewVoiceInputService(recognizer, VoiceActivationConfig{Mode: ListeningPushToTalk, Sensitivity: 0})

	event, err := service.ProcessAudioChunk(context.Background(), loudChunk(), false)
	require.NoError(t, err)
	assert.Nil(t, event)

	recognizer.EXPECT().Transcribe(mock.Anything, loudChunk()).Return("  run command /time set day ", nil).Once()

	event, err = service.ProcessAudioChunk(context.Background(), loudChunk(), true)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "run command /time set day", event.Transcript)
	assert.Equal(t, ListeningPushToTalk, event.Mode)
	assert.False(t, event.WakeWordDetected)
}

func TestVoiceInputSensitivityGate(t *testing.T) {
	recognizer := mocks.NewMockSpeechRecognizer(t)
	service := NewVoiceInputService(recognizer, VoiceActivationConfig{Mode: ListeningAlwaysListening, WakeWord: "assistant", Sensitivity: 0.5})

	silence := bytes.Repeat([]byte{128}, 32)
	event, err := service.ProcessAudioChunk(context.Background(), silence, false)
	require.NoError(t, err)
	assert.Nil(t, event)

	event, err = service.ProcessAudioChunk(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestVoiceInputAlwaysListeningRequiresWakeWord(t *testing.T) {
	recognizer := mocks.NewMockSpeechRecognizer(t)
	recognizer.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("what should I do next", nil).Once()
	recognizer.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("Assistant, what should I do next", nil).Once()

	service := NewVoiceInputService(recognizer, VoiceActivationConfig{Mode: ListeningAlwaysListening, WakeWord: " Assistant ", Sensitivity: 0})

	event, err := service.ProcessAudioChunk(context.Background(), loudChunk(), false)
	require.NoError(t, err)
	assert.Nil(t, event)

	event, err = service.ProcessAudioChunk(context.Background(), loudChunk(), false)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "what should I do next", event.Transcript)
	assert.True(t, event.WakeWordDetected)
}

func TestVoiceInputTranscribeError(t *testing.T) {
	recognizer := mocks.NewMockSpeechRecognizer(t)
	recognizer.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("", errors.New("engine offline")).Once()
	service := NewVoiceInputService(recognizer, VoiceActivationConfig{Mode: ListeningPushToTalk})

	_, err := service.ProcessAudioChunk(context.Background(), loudChunk(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcribe audio: engine offline")
}

func TestVoiceInputAcceptTranscriptKeepsBareWakeWord(t *testing.T) {
	service := NewVoiceInputService(nil, DefaultVoiceActivationConfig())

	event := service.AcceptTranscript("assistant")
	require.NotNil(t, event)
	assert.Equal(t, "assistant", event.Transcript)

	assert.Nil(t, service.AcceptTranscript("   "))
}

func TestVoiceInputSettersClampAndNormalize(t *testing.T) {
	service := NewVoiceInputService(nil, VoiceActivationConfig{Sensitivity: 4})
	assert.Equal(t, 1.0, service.Config().Sensitivity)
	assert.Equal(t, ListeningPushToTalk, service.Config().Mode)

	service.SetSensitivity(-2)
	service.SetWakeWord("  Jarvis ")
	service.SetMode(ListeningAlwaysListening)

	config := service.Config()
	assert.Equal(t, 0.0, config.Sensitivity)
	assert.Equal(t, "jarvis", config.WakeWord)
	assert.Equal(t, ListeningAlwaysListening, config.Mode)
}

func TestEstimateSignalLevel(t *testing.T) {
	assert.Equal(t, 0.0, estimateSignalLevel(nil))
	assert.Equal(t, 0.0, estimateSignalLevel([]byte{128, 128}))
	assert.Equal(t, 1.0, estimateSignalLevel([]byte{0, 0}))
}

func TestVoiceOutputSpeakNormalizesAndTruncates(t *testing.T) {
	synthesizer := mocks.NewMockSpeechSynthesizer(t)
	output := mocks.NewMockAudioOutput(t)
	audio := []byte("pcm")

	synthesizer.EXPECT().Synthesize(mock.Anything, "Nearest village").Return(audio, nil).Once()
	output.EXPECT().Play(mock.Anything, audio).Return(nil).Once()

	service := NewVoiceOutputService(synthesizer, output, VoiceOutputConfig{Enabled: true, MaxChars: 15})

	got, err := service.Speak(context.Background(), "  Nearest   village is at x=1 ")
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestVoiceOutputSkipsWhenDisabledOrEmpty(t *testing.T) {
	synthesizer := mocks.NewMockSpeechSynthesizer(t)
	output := mocks.NewMockAudioOutput(t)

	disabled := NewVoiceOutputService(synthesizer, output, VoiceOutputConfig{Enabled: false})
	got, err := disabled.Speak(context.Background(), "hello")
	require.NoError(t, err)
	assert.Nil(t, got)

	enabled := NewVoiceOutputService(synthesizer, output, VoiceOutputConfig{Enabled: true})
	got, err = enabled.Speak(context.Background(), " \n\t ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVoiceOutputPrepareSpeechDefaultLimit(t *testing.T) {
	service := NewVoiceOutputService(nil, nil, VoiceOutputConfig{Enabled: true})
	assert.Len(t, []rune(service.PrepareSpeech(strings.Repeat("é", 600))), 500)
}

func TestVoiceOutputPlayError(t *testing.T) {
	synthesizer := mocks.NewMockSpeechSynthesizer(t)
	output := mocks.NewMockAudioOutput(t)
	synthesizer.EXPECT().Synthesize(mock.Anything, "hi").Return([]byte{1}, nil).Once()
	output.EXPECT().Play(mock.Anything, []byte{1}).Return(errors.New("device busy")).Once()

	service := NewVoiceOutputService(synthesizer, output, VoiceOutputConfig{Enabled: true})
	_, err := service.Speak(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "play speech: device busy")
}
