package inbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type GenerateScenesParams struct {
	Story             string
	StoryID           string
	Characters        []domain.Character
	VisualInstruction string
}

type SceneGeneratorPort interface {
	Generate(ctx context.Context, params GenerateScenesParams) (<-chan domain.Scene, <-chan error)
}
