package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type sceneMediaGenerator struct {
	logger          outbound.LoggerPort
	imageGenerator  outbound.ImageGeneratorPort
	speechGenerator outbound.SpeechGeneratorPort
	workerPool      outbound.TaskDispatcher
}

func NewSceneMediaGenerator(logger outbound.LoggerPort, imageGenerator outbound.ImageGeneratorPort,
	speechGenerator outbound.SpeechGeneratorPort, workerPool outbound.TaskDispatcher) inbound.SceneMediaGeneratorPort {
	return &sceneMediaGenerator{
		logger:          logger,
		imageGenerator:  imageGenerator,
		speechGenerator: speechGenerator,
		workerPool:      workerPool,
	}
}

func (s *sceneMediaGenerator) Generate(ctx context.Context, sceneCh <-chan domain.Scene, voice string) (<-chan domain.SceneWithMediaFiles, <-chan error) {
	out := make(chan domain.SceneWithMediaFiles)
	errCh := make(chan error, 5)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

		for sc := range sceneCh {
			select {
			case <-newCtx.Done():
				return
			default:
				wg.Add(1)
				scene := sc
				err := s.workerPool.Submit(func() {
					defer wg.Done()

					sceneWithMedia, err := s.generateMediaFiles(newCtx, scene, voice)
					if err != nil {
						select {
						case errCh <- err:
						case <-newCtx.Done():
						}
						return
					}

					select {
					case out <- *sceneWithMedia:
					case <-newCtx.Done():
					}
				})

				if err != nil {
					wg.Done()
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					return
				}
			}
		}

		wg.Wait()
	})

	if err != nil {
		errCh <- err
	}

	return out, errCh
}

func (s *sceneMediaGenerator) generateMediaFiles(ctx context.Context, scene domain.Scene, voice string) (*domain.SceneWithMediaFiles, error) {
	imageReader, err := s.imageGenerator.Generate(ctx, scene)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to generate scene image", map[string]interface{}{
			"scene": scene.Number,
		})
		return nil, err
	}
	imageFileName, err := s.writeMediaToFile(imageReader)
	if err != nil {
		s.logger.Error(err, "Failed to write scene image to file")
		return nil, err
	}

	audioReader, err := s.speechGenerator.Generate(ctx, outbound.GenerateSpeechRequest{
		Text:  scene.NarrationText,
		Voice: voice,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to generate narration", map[string]interface{}{
			"scene": scene.Number,
		})
		return nil, err
	}
	audioFileName, err := s.writeMediaToFile(audioReader)
	if err != nil {
		s.logger.Error(err, "Failed to write narration to file")
		return nil, err
	}

	return &domain.SceneWithMediaFiles{
		Scene:         scene,
		ImageFileName: imageFileName,
		AudioFileName: audioFileName,
	}, nil
}

func (s *sceneMediaGenerator) writeMediaToFile(reader io.ReadCloser) (string, error) {
	defer func(reader io.ReadCloser) {
		if err := reader.Close(); err != nil {
			s.logger.Error(err, "Failed to close media reader")
		}
	}(reader)

	fileName := filepath.Join(os.TempDir(), uuid.NewString())
	file, err := os.Create(fileName)
	if err != nil {
		return "", err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "Failed to close the file")
		}
	}(file)

	if _, err = io.Copy(file, reader); err != nil {
		return "", err
	}

	return file.Name(), nil
}
