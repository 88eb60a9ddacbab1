package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
)

// localVideoPublisher moves the finished MP4 into the output directory. Used
// by the CLI, where "publishing" just means a stable path on disk.
type localVideoPublisher struct {
	logger    outbound.LoggerPort
	outputDir string
}

func NewLocalVideoPublisher(outputDir string, logger outbound.LoggerPort) outbound.VideoPublisherPort {
	return &localVideoPublisher{
		logger:    logger,
		outputDir: outputDir,
	}
}

func (p *localVideoPublisher) Publish(_ context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		p.logger.Error(err, "Failed to create output directory")
		return nil, err
	}

	name := req.OutputName
	if name == "" {
		name = fmt.Sprintf("storyforge_%s.mp4", time.Now().Format("2006-01-02_15-04-05"))
	}
	dest := filepath.Join(p.outputDir, name)

	if err := moveFile(req.VideoFileName, dest); err != nil {
		p.logger.Error(err, "Failed to move video into output directory")
		return nil, err
	}

	return &outbound.PublishVideoResponse{
		Location: dest,
	}, nil
}

// moveFile renames when possible and falls back to copy+remove for
// cross-device temp directories.
func moveFile(src string, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
