package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const pollinationsAttempts = 3

// pollinationsImageGenerator fetches images from the free, keyless
// Pollinations endpoint. The seed is derived from the scene number so reruns
// stay reproducible.
type pollinationsImageGenerator struct {
	ContentFetcher
	logger      outbound.LoggerPort
	imageConfig *config.ImageConfig
}

func NewPollinationsImageGenerator(contentFetcher ContentFetcher, imageConfig *config.ImageConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &pollinationsImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		imageConfig:    imageConfig,
	}
}

func (g *pollinationsImageGenerator) Generate(ctx context.Context, scene domain.Scene) (io.ReadCloser, error) {
	imageURL := g.buildURL(scene)

	var lastErr error
	for attempt := 1; attempt <= pollinationsAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; StoryForgeAI/1.0)")

		body, err := g.FetchStream(req)
		if err == nil {
			return body, nil
		}
		lastErr = err

		g.logger.ErrorWithFields(err, "Pollinations fetch attempt failed", map[string]interface{}{
			"attempt": attempt,
			"scene":   scene.Number,
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 3 * time.Second):
		}
	}

	return nil, fmt.Errorf("pollinations fetch failed after %d attempts: %w", pollinationsAttempts, lastErr)
}

func (g *pollinationsImageGenerator) buildURL(scene domain.Scene) string {
	prompt := fmt.Sprintf("cinematic, high quality, 16:9, %s", scene.Description)
	return fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=%d&height=%d&nologo=true&model=flux&seed=%d",
		url.PathEscape(prompt),
		g.imageConfig.Width,
		g.imageConfig.Height,
		scene.Number*42+7,
	)
}
