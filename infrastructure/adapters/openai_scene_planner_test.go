package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

func TestExtractJSONBlock(t *testing.T) {
	payload := `{"title":"T","scenes":[]}`

	assert.Equal(t, payload, extractJSONBlock(payload))
	assert.Equal(t, payload, extractJSONBlock("```json\n"+payload+"\n```"))
	assert.Equal(t, payload, extractJSONBlock("Here you go:\n```\n"+payload+"\n```\nEnjoy!"))
	assert.Equal(t, payload, extractJSONBlock("  \n"+payload+"\n  "))
}

func TestParseBreakdown_NormalizesScenes(t *testing.T) {
	planner := &openAIScenePlanner{
		logger:        NewZerologWrapper(),
		plannerConfig: config.GetPlannerConfig(),
	}

	raw := `{"title":"The Fox","scenes":[
		{"description":"A fox in the snow","narration_text":"A fox appears."},
		{"scene_number":5,"description":"The fox runs","narration_text":"It runs.","duration_hint_sec":6.5}
	]}`

	breakdown, err := planner.parseBreakdown(raw)
	require.NoError(t, err)
	require.Len(t, breakdown.Scenes, 2)

	assert.Equal(t, 1, breakdown.Scenes[0].Number)
	assert.Equal(t, 5.0, breakdown.Scenes[0].DurationHintSec)
	assert.Equal(t, 5, breakdown.Scenes[1].Number)
	assert.Equal(t, 6.5, breakdown.Scenes[1].DurationHintSec)
}

func TestParseBreakdown_RejectsEmptyBreakdown(t *testing.T) {
	planner := &openAIScenePlanner{
		logger:        NewZerologWrapper(),
		plannerConfig: config.GetPlannerConfig(),
	}

	_, err := planner.parseBreakdown(`{"title":"Empty","scenes":[]}`)
	assert.Error(t, err)

	_, err = planner.parseBreakdown("not json at all")
	assert.Error(t, err)
}

func TestBuildPlannerUserContent(t *testing.T) {
	content := buildPlannerUserContent(outbound.PlanScenesRequest{
		Story: "Once upon a time.",
		Characters: []domain.Character{
			{Name: "Mira", Description: "a tall woman in a red coat"},
		},
		VisualInstruction: "watercolor style",
	})

	assert.True(t, strings.Contains(content, "- Mira: a tall woman in a red coat"))
	assert.True(t, strings.Contains(content, "watercolor style"))
	assert.True(t, strings.HasSuffix(content, "Once upon a time."))
}
