package outbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type PlanScenesRequest struct {
	Story             string
	Characters        []domain.Character
	VisualInstruction string
}

type ScenePlannerPort interface {
	Plan(ctx context.Context, req PlanScenesRequest) (*domain.SceneBreakdown, error)
}
