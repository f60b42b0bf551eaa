package ports

import "context"

type SpeechRecognizer interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type AudioOutput interface {
	Play(ctx context.Context, audio []byte) error
}
