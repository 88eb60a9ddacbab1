package inbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type SceneMetadataSaverPort interface {
	Save(ctx context.Context, clips <-chan domain.SceneClip) (<-chan domain.SceneClip, <-chan error)
}
