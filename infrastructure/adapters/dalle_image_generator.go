package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type DalleApiRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size"`
	Number         int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type DalleApiResponse struct {
	Data []struct {
		B64Json string `json:"b64_json"`
	} `json:"data"`
}

type dalleImageGenerator struct {
	ContentFetcher
	logger      outbound.LoggerPort
	dalleConfig *config.DaLLeConfig
}

func NewDalleImageGenerator(contentFetcher ContentFetcher, dalleConfig *config.DaLLeConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &dalleImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		dalleConfig:    dalleConfig,
	}
}

func (g *dalleImageGenerator) Generate(ctx context.Context, scene domain.Scene) (io.ReadCloser, error) {
	req, err := g.getRequest(ctx, scene.Description)
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	rawRes, err := g.FetchContent(req)
	if err != nil {
		g.logger.Error(err, "Failed to fetch the generated image")
		return nil, err
	}

	var dalleRes DalleApiResponse
	err = json.Unmarshal(rawRes, &dalleRes)
	if err != nil {
		g.logger.Error(err, "Failed to unmarshal the response")
		return nil, err
	}
	if len(dalleRes.Data) == 0 {
		return nil, fmt.Errorf("image API returned no data")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(dalleRes.Data[0].B64Json)
	if err != nil {
		g.logger.Error(err, "Failed to decode the image")
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(decodedImage)), nil
}

func (g *dalleImageGenerator) getRequest(ctx context.Context, description string) (*http.Request, error) {
	reqBody := DalleApiRequest{
		Model:          g.dalleConfig.Model,
		Prompt:         fmt.Sprintf("Cinematic scene, 16:9 aspect: %s", description),
		Size:           g.dalleConfig.Size,
		Number:         1,
		ResponseFormat: "b64_json",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.dalleConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+g.dalleConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
