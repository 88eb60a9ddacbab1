package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const DoneSignal = "[DONE]"
const MaxStreamRetries = 3

const scenePlannerSystemPrompt = "You are a cinematic scene planner. Break a written story into a sequence of visual scenes suitable for turning into a short film.\n" +
	"For each scene provide:\n" +
	"1. description: a concrete visual description for AI image generation (setting, characters, action, mood, lighting).\n" +
	"2. narration_text: the exact words spoken as voice-over during the scene, concise enough for a 4-7 second clip.\n" +
	"3. duration_hint_sec: suggested duration in seconds (typically 4-8).\n" +
	"Output a JSON object with \"title\" (short story title) and \"scenes\" (ordered list of objects with \"scene_number\" starting at 1, \"description\", \"narration_text\", \"duration_hint_sec\").\n" +
	"Create 3-8 scenes for short stories; for longer text, aim for one scene per major story beat. Be cinematic and visual."

type chatCompletionRequest struct {
	Stream      bool          `json:"stream"`
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionChunk struct {
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type openAIScenePlanner struct {
	logger        outbound.LoggerPort
	plannerConfig *config.PlannerConfig
}

func NewOpenAIScenePlanner(plannerConfig *config.PlannerConfig, logger outbound.LoggerPort) outbound.ScenePlannerPort {
	return &openAIScenePlanner{
		logger:        logger,
		plannerConfig: plannerConfig,
	}
}

func (p *openAIScenePlanner) Plan(ctx context.Context, req outbound.PlanScenesRequest) (*domain.SceneBreakdown, error) {
	httpReq, err := p.createRequest(ctx, req)
	if err != nil {
		p.logger.Error(err, "Failed to create HTTP request for scene planning")
		return nil, err
	}

	stream, err := eventsource.SubscribeWithRequest("", httpReq)
	if err != nil {
		p.logger.Error(err, "Failed to subscribe to scene planner stream")
		return nil, err
	}

	var builder strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return p.parseBreakdown(builder.String())
			}
			token, err := p.extractToken(ev)
			if err != nil {
				return nil, err
			}
			builder.WriteString(token)
			retryCount = 0
		case err := <-stream.Errors:
			if err == io.EOF {
				p.logger.Info("Scene planner stream closed")
				return p.parseBreakdown(builder.String())
			}
			if retryCount < MaxStreamRetries {
				p.logger.ErrorWithFields(err, "Error occurred during streaming, retrying", map[string]interface{}{
					"retry_count": retryCount})
				retryCount++
				continue
			}
			p.logger.Error(err, "Error occurred during streaming, max retries reached")
			return nil, err
		}
	}
}

func (p *openAIScenePlanner) extractToken(event eventsource.Event) (string, error) {
	var chunk chatCompletionChunk
	err := json.Unmarshal([]byte(event.Data()), &chunk)
	if err != nil {
		p.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunk.Choices) == 0 {
		return "", nil
	}

	return chunk.Choices[0].Delta.Content, nil
}

func (p *openAIScenePlanner) parseBreakdown(raw string) (*domain.SceneBreakdown, error) {
	var breakdown domain.SceneBreakdown
	err := json.Unmarshal([]byte(extractJSONBlock(raw)), &breakdown)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to unmarshal scene breakdown", map[string]interface{}{
			"payload": raw,
		})
		return nil, err
	}
	if len(breakdown.Scenes) == 0 {
		return nil, fmt.Errorf("scene planner returned no scenes")
	}

	for i := range breakdown.Scenes {
		if breakdown.Scenes[i].Number == 0 {
			breakdown.Scenes[i].Number = i + 1
		}
		if breakdown.Scenes[i].DurationHintSec <= 0 {
			breakdown.Scenes[i].DurationHintSec = 5.0
		}
	}

	return &breakdown, nil
}

func (p *openAIScenePlanner) createRequest(ctx context.Context, req outbound.PlanScenesRequest) (*http.Request, error) {
	promptReq := chatCompletionRequest{
		Stream: true,
		Model:  p.plannerConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: scenePlannerSystemPrompt},
			{Role: "user", Content: buildPlannerUserContent(req)},
		},
		Temperature: 0.5,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		p.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.plannerConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		p.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+p.plannerConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

func buildPlannerUserContent(req outbound.PlanScenesRequest) string {
	var b strings.Builder
	b.WriteString("Break this story into cinematic scenes.\n")
	if len(req.Characters) > 0 {
		b.WriteString("\nUse these character descriptions consistently in every scene description they appear in:\n")
		for _, c := range req.Characters {
			b.WriteString("- " + c.Name + ": " + c.Description + "\n")
		}
	}
	if req.VisualInstruction != "" {
		b.WriteString("\nVisual style for every scene: " + req.VisualInstruction + "\n")
	}
	b.WriteString("\nStory:\n")
	b.WriteString(req.Story)
	return b.String()
}

// extractJSONBlock strips markdown code fences that chat models like to wrap
// JSON replies in.
func extractJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}
	return text
}
