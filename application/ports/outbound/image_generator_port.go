package outbound

import (
	"context"
	"io"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type ImageGeneratorPort interface {
	Generate(ctx context.Context, scene domain.Scene) (io.ReadCloser, error)
}
