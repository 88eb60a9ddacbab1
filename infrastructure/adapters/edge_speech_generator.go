package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
)

// edgeSpeechGenerator shells out to the edge-tts CLI, the free default
// narration engine. Install with: pip install edge-tts
type edgeSpeechGenerator struct {
	logger    outbound.LoggerPort
	ttsConfig *config.TTSConfig
}

func NewEdgeSpeechGenerator(ttsConfig *config.TTSConfig, logger outbound.LoggerPort) (outbound.SpeechGeneratorPort, error) {
	if _, err := exec.LookPath(ttsConfig.EdgeCommand); err != nil {
		return nil, fmt.Errorf("edge-tts not found (%s): install it with pip install edge-tts, or set TTS_BACKEND=elevenlabs", ttsConfig.EdgeCommand)
	}
	return &edgeSpeechGenerator{
		logger:    logger,
		ttsConfig: ttsConfig,
	}, nil
}

func (g *edgeSpeechGenerator) Generate(ctx context.Context, params outbound.GenerateSpeechRequest) (io.ReadCloser, error) {
	if strings.TrimSpace(params.Text) == "" {
		return generateSilentClip(ctx)
	}

	voice := params.Voice
	if voice == "" {
		voice = g.ttsConfig.DefaultVoice
	}

	outFile := filepath.Join(os.TempDir(), uuid.NewString()+".mp3")
	cmd := exec.CommandContext(ctx, g.ttsConfig.EdgeCommand,
		"--text", params.Text,
		"--voice", voice,
		"--write-media", outFile)

	if out, err := cmd.CombinedOutput(); err != nil {
		g.logger.ErrorWithFields(err, "edge-tts failed", map[string]interface{}{
			"voice":  voice,
			"output": string(out),
		})
		return nil, fmt.Errorf("edge-tts failed: %w", err)
	}

	return openRemovingReader(outFile)
}

// generateSilentClip renders one second of silence so empty narration never
// breaks video composition downstream.
func generateSilentClip(ctx context.Context) (io.ReadCloser, error) {
	outFile := filepath.Join(os.TempDir(), uuid.NewString()+".mp3")
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "lavfi",
		"-i", "anullsrc=r=24000:cl=mono",
		"-t", "1",
		"-q:a", "9",
		"-acodec", "libmp3lame",
		"-y", outFile)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to render silent clip: %w", err)
	}

	return openRemovingReader(outFile)
}

type removeOnCloseFile struct {
	*os.File
}

func (f *removeOnCloseFile) Close() error {
	err := f.File.Close()
	if removeErr := os.Remove(f.Name()); removeErr != nil && err == nil {
		err = removeErr
	}
	return err
}

// openRemovingReader opens a temp file whose backing file is deleted once the
// caller closes the reader.
func openRemovingReader(name string) (io.ReadCloser, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &removeOnCloseFile{File: file}, nil
}
