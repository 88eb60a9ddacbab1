package adapters

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const placeholderDescRunes = 80

// placeholderImageGenerator renders a labeled card instead of calling a
// generative model. It is the default backend, costs nothing and never fails.
type placeholderImageGenerator struct {
	logger      outbound.LoggerPort
	imageConfig *config.ImageConfig
}

func NewPlaceholderImageGenerator(imageConfig *config.ImageConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &placeholderImageGenerator{
		logger:      logger,
		imageConfig: imageConfig,
	}
}

func (g *placeholderImageGenerator) Generate(_ context.Context, scene domain.Scene) (io.ReadCloser, error) {
	width, height := g.imageConfig.Width, g.imageConfig.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 30, G: 30, B: 45, A: 255}), image.Point{}, draw.Src)

	title := fmt.Sprintf("Scene %d", scene.Number)
	desc := scene.Description
	if len([]rune(desc)) > placeholderDescRunes {
		desc = truncateRunes(desc, placeholderDescRunes) + "..."
	}

	drawCenteredText(img, title, height/2-20, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	drawCenteredText(img, desc, height/2+20, color.RGBA{R: 180, G: 180, B: 200, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		g.logger.Error(err, "Failed to encode placeholder image")
		return nil, err
	}

	return io.NopCloser(&buf), nil
}

func drawCenteredText(img *image.RGBA, text string, y int, col color.Color) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	drawer.Dot = fixed.P((img.Bounds().Dx()-textWidth)/2, y)
	drawer.DrawString(text)
}
