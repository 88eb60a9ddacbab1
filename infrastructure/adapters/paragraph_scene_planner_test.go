package adapters

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
)

func TestParagraphScenePlanner_OneScenePerParagraph(t *testing.T) {
	planner := NewParagraphScenePlanner()

	breakdown, err := planner.Plan(context.Background(), outbound.PlanScenesRequest{
		Story: "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.",
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Scenes, 3)

	for i, scene := range breakdown.Scenes {
		assert.Equal(t, i+1, scene.Number)
	}
	assert.Equal(t, "Second paragraph.", breakdown.Scenes[1].NarrationText)
	assert.True(t, strings.HasPrefix(breakdown.Scenes[0].Description, "Scene 1:"))
}

func TestParagraphScenePlanner_CapsSceneCount(t *testing.T) {
	paragraphs := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		paragraphs = append(paragraphs, "A paragraph.")
	}

	planner := NewParagraphScenePlanner()
	breakdown, err := planner.Plan(context.Background(), outbound.PlanScenesRequest{
		Story: strings.Join(paragraphs, "\n\n"),
	})
	require.NoError(t, err)
	assert.Len(t, breakdown.Scenes, maxFallbackScenes)
}

func TestParagraphScenePlanner_EmptyStory(t *testing.T) {
	planner := NewParagraphScenePlanner()

	breakdown, err := planner.Plan(context.Background(), outbound.PlanScenesRequest{Story: "   \n\n  "})
	require.NoError(t, err)
	require.Len(t, breakdown.Scenes, 1)
	assert.Equal(t, "A single scene.", breakdown.Scenes[0].NarrationText)
}

func TestParagraphScenePlanner_TruncatesLongParagraphs(t *testing.T) {
	long := strings.Repeat("ab", 300)

	planner := NewParagraphScenePlanner()
	breakdown, err := planner.Plan(context.Background(), outbound.PlanScenesRequest{Story: long})
	require.NoError(t, err)
	require.Len(t, breakdown.Scenes, 1)

	narration := breakdown.Scenes[0].NarrationText
	assert.True(t, strings.HasSuffix(narration, "..."))
	assert.Len(t, []rune(narration), fallbackExcerptRunes+3)
}

func TestTruncateRunes_MultiByte(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
}
