package dto

import (
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type CreateStoryResponse struct {
	StoryID       string                  `json:"story_id"`
	VideoLocation string                  `json:"video_location"`
	StoreRegion   string                  `json:"store_region,omitempty"`
	Scenes        []domain.SceneClipEvent `json:"scenes"`
}
