package inbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type SceneClipGeneratorPort interface {
	Generate(ctx context.Context, scenes <-chan domain.SceneWithMediaFiles) (<-chan domain.SceneClip, <-chan error)
}
