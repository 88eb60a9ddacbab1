package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const characterExtractSystemPrompt = "You are extracting character descriptions for a short film. " +
	"Given a story, list each named or implied character with a short visual description for AI image generation (age, appearance, clothing). " +
	"Output JSON only: {\"characters\": [{\"name\": \"Name\", \"description\": \"visual description\"}]}. " +
	"Use 1-2 short sentences per description. If no clear characters, describe the main subject with one entry."

const maxCharacterStoryRunes = 4000

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type characterList struct {
	Characters []domain.Character `json:"characters"`
}

type openAICharacterAnalyzer struct {
	ContentFetcher
	logger        outbound.LoggerPort
	plannerConfig *config.PlannerConfig
}

func NewOpenAICharacterAnalyzer(contentFetcher ContentFetcher, plannerConfig *config.PlannerConfig, logger outbound.LoggerPort) outbound.CharacterAnalyzerPort {
	return &openAICharacterAnalyzer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		plannerConfig:  plannerConfig,
	}
}

func (a *openAICharacterAnalyzer) Analyze(ctx context.Context, story string) ([]domain.Character, error) {
	req, err := a.createRequest(ctx, story)
	if err != nil {
		a.logger.Error(err, "Failed to create character extraction request")
		return nil, err
	}

	rawRes, err := a.FetchContent(req)
	if err != nil {
		a.logger.Error(err, "Failed to fetch character extraction response")
		return nil, err
	}

	var res chatCompletionResponse
	if err := json.Unmarshal(rawRes, &res); err != nil {
		a.logger.Error(err, "Failed to unmarshal character extraction response")
		return nil, err
	}
	if len(res.Choices) == 0 {
		return nil, nil
	}

	return parseCharacterPayload(res.Choices[0].Message.Content), nil
}

func (a *openAICharacterAnalyzer) createRequest(ctx context.Context, story string) (*http.Request, error) {
	reqBody := chatCompletionRequest{
		Model: a.plannerConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: characterExtractSystemPrompt},
			{Role: "user", Content: "Story:\n" + truncateRunes(story, maxCharacterStoryRunes)},
		},
		Temperature: 0.3,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.plannerConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+a.plannerConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// parseCharacterPayload accepts either a bare array or the documented
// {"characters": [...]} wrapper, fenced or not. A reply that parses to
// nothing yields an empty list rather than an error.
func parseCharacterPayload(text string) []domain.Character {
	payload := extractJSONBlock(text)

	var wrapped characterList
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && len(wrapped.Characters) > 0 {
		return wrapped.Characters
	}

	var bare []domain.Character
	if err := json.Unmarshal([]byte(payload), &bare); err == nil {
		return bare
	}

	return nil
}
