package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/config"
)

func testVideoConfig(t *testing.T) *config.VideoConfig {
	t.Helper()
	cfg, err := config.GetVideoConfig()
	require.NoError(t, err)
	return cfg
}

func TestMotionForOrdinal_Rotation(t *testing.T) {
	assert.Equal(t, "zoom_in", motionForOrdinal(1))
	assert.Equal(t, "pan_right", motionForOrdinal(2))
	assert.Equal(t, "pan_slow", motionForOrdinal(6))
	assert.Equal(t, "zoom_in", motionForOrdinal(7))
	assert.Equal(t, "zoom_in", motionForOrdinal(0))
}

func TestBuildSceneClipArgs(t *testing.T) {
	cfg := testVideoConfig(t)
	args := buildSceneClipArgs("img", "audio", "out.mp4", "zoom_in", 2.5, cfg)

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-loop 1")
	assert.Contains(t, joined, "-i img")
	assert.Contains(t, joined, "-i audio")
	assert.Contains(t, joined, "scale=6400:-2")
	assert.Contains(t, joined, "zoompan=")
	assert.Contains(t, joined, "format=yuv420p")
	assert.Contains(t, joined, "-t 2.500")
	assert.Contains(t, joined, "-tune stillimage")
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestZoompanFilter_Motions(t *testing.T) {
	cfg := testVideoConfig(t)

	zoomIn := zoompanFilter("zoom_in", 48, cfg)
	assert.Contains(t, zoomIn, "1+0.15*on/48")
	assert.Contains(t, zoomIn, "s=1280x720")
	assert.Contains(t, zoomIn, "fps=24")

	panLeft := zoompanFilter("pan_left", 48, cfg)
	assert.Contains(t, panLeft, "(1-on/48)")

	zoomOut := zoompanFilter("zoom_out", 48, cfg)
	assert.Contains(t, zoomOut, "1.15-0.15*on/48")
}

func TestZoompanFilter_MinimumFrameCount(t *testing.T) {
	cfg := testVideoConfig(t)
	filter := zoompanFilter("zoom_in", 0, cfg)
	assert.Contains(t, filter, ":d=1:")
}
