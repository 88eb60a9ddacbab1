package adapters

import (
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

func TestPlaceholderImageGenerator_ProducesPNG(t *testing.T) {
	generator := NewPlaceholderImageGenerator(config.GetImageConfig(), NewZerologWrapper())

	reader, err := generator.Generate(context.Background(), domain.Scene{
		Number:      3,
		Description: "A fox crosses a frozen river at dusk",
	})
	require.NoError(t, err)
	defer reader.Close()

	img, err := png.Decode(reader)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 1024, bounds.Dx())
	assert.Equal(t, 576, bounds.Dy())
}

func TestPlaceholderImageGenerator_LongDescription(t *testing.T) {
	generator := NewPlaceholderImageGenerator(config.GetImageConfig(), NewZerologWrapper())

	long := ""
	for i := 0; i < 50; i++ {
		long += "very long description "
	}

	reader, err := generator.Generate(context.Background(), domain.Scene{Number: 1, Description: long})
	require.NoError(t, err)
	defer reader.Close()

	_, err = png.Decode(reader)
	assert.NoError(t, err)
}
