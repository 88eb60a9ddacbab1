package adapters

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type ffmpegVideoConcatenator struct {
	logger outbound.LoggerPort
}

func NewFFmpegVideoConcatenator(logger outbound.LoggerPort) outbound.ConcatenateClipsPort {
	return &ffmpegVideoConcatenator{
		logger: logger,
	}
}

func (f *ffmpegVideoConcatenator) Concatenate(clips []domain.SceneClip) (finalFileName string, err error) {
	sort.Sort(domain.SceneClipsAscByOrdinal(clips))

	fileList, err := os.Create(filepath.Join(os.TempDir(), uuid.NewString()))
	if err != nil {
		f.logger.Error(err, "Failed to create clip list file")
		return
	}

	defer func(fileList *os.File) {
		if closeErr := fileList.Close(); closeErr != nil {
			f.logger.Error(closeErr, "Failed to close clip list file")
		}
		if removeErr := os.Remove(fileList.Name()); removeErr != nil {
			f.logger.Error(removeErr, "Failed to remove clip list file")
		}
	}(fileList)

	writer := bufio.NewWriter(fileList)
	for _, clip := range clips {
		_, err = writer.WriteString("file '" + clip.FileName + "'\n")
		if err != nil {
			f.logger.Error(err, "Failed to write to clip list file")
			return
		}
	}
	err = writer.Flush()
	if err != nil {
		f.logger.Error(err, "Failed to flush clip list file")
		return
	}

	finalFileName = filepath.Join(os.TempDir(), uuid.NewString()+".mp4")

	cmd := exec.Command("ffmpeg", "-f", "concat", "-safe", "0", "-i", fileList.Name(), "-c", "copy", "-y", finalFileName)
	err = cmd.Run()
	if err != nil {
		f.logger.Error(err, "Failed to concatenate scene clips")
		return
	}

	for _, clip := range clips {
		if removeErr := os.Remove(clip.FileName); removeErr != nil {
			f.logger.Error(removeErr, "Failed to remove scene clip file")
		}
	}

	return
}
