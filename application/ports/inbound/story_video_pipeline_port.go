package inbound

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type StartPipelineParams struct {
	StoryID           string
	Input             string
	Voice             string
	UserID            string
	OutputName        string
	Characters        []domain.Character
	VisualInstruction string
}

type StoryVideoResponse struct {
	VideoLocation string
	StoreRegion   string
	Clips         []domain.SceneClip
}

type StoryVideoPipelinePort interface {
	StartPipeline(ctx context.Context, request StartPipelineParams) (*StoryVideoResponse, error)
}
