package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const maxFallbackScenes = 10
const fallbackExcerptRunes = 200

// paragraphScenePlanner is the no-cost planner: one scene per paragraph,
// narration equal to the paragraph excerpt. Used when no LLM is configured.
type paragraphScenePlanner struct{}

func NewParagraphScenePlanner() outbound.ScenePlannerPort {
	return &paragraphScenePlanner{}
}

func (p *paragraphScenePlanner) Plan(_ context.Context, req outbound.PlanScenesRequest) (*domain.SceneBreakdown, error) {
	paragraphs := splitParagraphs(req.Story)
	if len(paragraphs) == 0 {
		if strings.TrimSpace(req.Story) == "" {
			paragraphs = []string{"A single scene."}
		} else {
			paragraphs = []string{truncateRunes(req.Story, 500)}
		}
	}
	if len(paragraphs) > maxFallbackScenes {
		paragraphs = paragraphs[:maxFallbackScenes]
	}

	scenes := make([]domain.Scene, 0, len(paragraphs))
	for i, para := range paragraphs {
		excerpt := excerptParagraph(para)
		scenes = append(scenes, domain.NewScene(
			i+1,
			fmt.Sprintf("Scene %d: %s", i+1, excerpt),
			excerpt,
			5.0,
		))
	}

	return &domain.SceneBreakdown{
		Title:  "Untitled",
		Scenes: scenes,
	}, nil
}

func splitParagraphs(story string) []string {
	parts := strings.Split(story, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

func excerptParagraph(para string) string {
	if len([]rune(para)) > fallbackExcerptRunes {
		return truncateRunes(para, fallbackExcerptRunes) + "..."
	}
	return para
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
