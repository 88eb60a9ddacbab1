package outbound

import (
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type ConcatenateClipsPort interface {
	Concatenate(clips []domain.SceneClip) (string, error)
}
