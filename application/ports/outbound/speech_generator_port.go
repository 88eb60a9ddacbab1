package outbound

import (
	"context"
	"io"
)

type GenerateSpeechRequest struct {
	Text  string
	Voice string
}

type SpeechGeneratorPort interface {
	Generate(ctx context.Context, req GenerateSpeechRequest) (io.ReadCloser, error)
}
