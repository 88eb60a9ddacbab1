package outbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type CharacterAnalyzerPort interface {
	Analyze(ctx context.Context, story string) ([]domain.Character, error)
}
