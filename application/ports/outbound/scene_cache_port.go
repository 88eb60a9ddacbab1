package outbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type SceneCachePort interface {
	Save(ctx context.Context, clip domain.SceneClip) error
}
