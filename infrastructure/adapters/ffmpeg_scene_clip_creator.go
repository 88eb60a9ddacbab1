package adapters

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
)

// Camera motions applied in rotation so consecutive scenes feel different.
var motionTypes = []string{"zoom_in", "pan_right", "zoom_out", "pan_left", "zoom_plus_pan", "pan_slow"}

type ffmpegSceneClipCreator struct {
	logger      outbound.LoggerPort
	videoConfig *config.VideoConfig
}

func NewFFmpegSceneClipCreator(videoConfig *config.VideoConfig, logger outbound.LoggerPort) outbound.SceneClipCreator {
	return &ffmpegSceneClipCreator{
		logger:      logger,
		videoConfig: videoConfig,
	}
}

func (c *ffmpegSceneClipCreator) Create(params outbound.CreateSceneClipParams) (*outbound.CreateSceneClipResponse, error) {
	defer func() {
		if err := os.Remove(params.AudioFileName); err != nil {
			c.logger.Error(err, "error removing audio file")
		}
		if err := os.Remove(params.ImageFileName); err != nil {
			c.logger.Error(err, "error removing image file")
		}
	}()

	audioDuration, err := probeDurationSeconds(params.AudioFileName)
	if err != nil {
		c.logger.Error(err, "error getting narration duration")
		return nil, err
	}

	duration := audioDuration + c.videoConfig.NarrationPadSec
	if duration < c.videoConfig.MinSceneDuration {
		duration = c.videoConfig.MinSceneDuration
	}

	outputFile := filepath.Join(os.TempDir(), uuid.NewString()+".mp4")
	args := buildSceneClipArgs(params.ImageFileName, params.AudioFileName, outputFile,
		motionForOrdinal(params.Ordinal), duration, c.videoConfig)

	cmd := exec.Command("ffmpeg", args...)
	if err := cmd.Run(); err != nil {
		c.logger.ErrorWithFields(err, "error creating scene clip", map[string]interface{}{
			"ordinal": params.Ordinal,
			"motion":  motionForOrdinal(params.Ordinal),
		})
		return nil, err
	}

	return &outbound.CreateSceneClipResponse{
		FileName: outputFile,
		Duration: duration,
	}, nil
}

func motionForOrdinal(ordinal int) string {
	idx := (ordinal - 1) % len(motionTypes)
	if idx < 0 {
		idx = 0
	}
	return motionTypes[idx]
}

// buildSceneClipArgs assembles the ffmpeg invocation for one still image plus
// its narration: the image is upscaled first so zoompan stays smooth, then a
// motion expression pans or zooms over the clip's frame count.
func buildSceneClipArgs(imageFile string, audioFile string, outputFile string, motion string, duration float64, cfg *config.VideoConfig) []string {
	frames := int(math.Ceil(duration * float64(cfg.FPS)))
	filter := fmt.Sprintf("[0:v]scale=6400:-2,%s,format=yuv420p[v]", zoompanFilter(motion, frames, cfg))

	return []string{
		"-loop", "1",
		"-i", imageFile,
		"-i", audioFile,
		"-filter_complex", filter,
		"-map", "[v]",
		"-map", "1:a",
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-c:a", "aac",
		"-b:a", "192k",
		"-t", fmt.Sprintf("%.3f", duration),
		"-y", outputFile,
	}
}

// zoompanFilter renders one of the Ken Burns family motions as a zoompan
// expression. on/D is clip progress in [0,1].
func zoompanFilter(motion string, frames int, cfg *config.VideoConfig) string {
	d := frames
	if d < 1 {
		d = 1
	}

	centerX := "iw/2-(iw/zoom/2)"
	centerY := "ih/2-(ih/zoom/2)"

	var z, x, y string
	switch motion {
	case "zoom_out":
		z = fmt.Sprintf("1.15-0.15*on/%d", d)
		x, y = centerX, centerY
	case "pan_right":
		z = "1.08"
		x = fmt.Sprintf("(iw-iw/zoom)*on/%d", d)
		y = centerY
	case "pan_left":
		z = "1.08"
		x = fmt.Sprintf("(iw-iw/zoom)*(1-on/%d)", d)
		y = centerY
	case "zoom_plus_pan":
		z = fmt.Sprintf("1+0.075*on/%d", d)
		x = fmt.Sprintf("(iw-iw/zoom)*on/%d", 2*d)
		y = centerY
	case "pan_slow":
		z = fmt.Sprintf("1+0.045*on/%d", d)
		x = centerX
		y = fmt.Sprintf("(ih-ih/zoom)*(1-on/%d)", d)
	default: // zoom_in
		z = fmt.Sprintf("1+0.15*on/%d", d)
		x, y = centerX, centerY
	}

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%d",
		z, x, y, d, cfg.Width, cfg.Height, cfg.FPS)
}
