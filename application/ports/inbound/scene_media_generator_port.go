package inbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type SceneMediaGeneratorPort interface {
	Generate(ctx context.Context, sceneCh <-chan domain.Scene, voice string) (<-chan domain.SceneWithMediaFiles, <-chan error)
}
