package services

import (
	"context"
	"sort"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/channel_utils"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type storyVideoPipeline struct {
	sceneGenerator     inbound.SceneGeneratorPort
	mediaFileGenerator inbound.SceneMediaGeneratorPort
	clipGenerator      inbound.SceneClipGeneratorPort
	metadataSaver      inbound.SceneMetadataSaverPort
	concatenateClips   outbound.ConcatenateClipsPort
	videoPublisher     outbound.VideoPublisherPort
	logger             outbound.LoggerPort
	workerPool         outbound.TaskDispatcher
}

func NewStoryVideoPipeline(
	sceneGenerator inbound.SceneGeneratorPort,
	mediaFileGenerator inbound.SceneMediaGeneratorPort,
	clipGenerator inbound.SceneClipGeneratorPort,
	metadataSaver inbound.SceneMetadataSaverPort,
	concatenateClips outbound.ConcatenateClipsPort,
	videoPublisher outbound.VideoPublisherPort,
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher) inbound.StoryVideoPipelinePort {
	return &storyVideoPipeline{
		sceneGenerator:     sceneGenerator,
		mediaFileGenerator: mediaFileGenerator,
		clipGenerator:      clipGenerator,
		metadataSaver:      metadataSaver,
		concatenateClips:   concatenateClips,
		videoPublisher:     videoPublisher,
		logger:             logger,
		workerPool:         workerPool,
	}
}

func (s *storyVideoPipeline) StartPipeline(ctx context.Context, request inbound.StartPipelineParams) (*inbound.StoryVideoResponse, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	scenesCh, generatorErrCh := s.sceneGenerator.Generate(newCtx, inbound.GenerateScenesParams{
		Story:             request.Input,
		StoryID:           request.StoryID,
		Characters:        request.Characters,
		VisualInstruction: request.VisualInstruction,
	})
	scenesWithMediaCh, mediaFileErrCh := s.mediaFileGenerator.Generate(newCtx, scenesCh, request.Voice)
	clipsCh, clipErrCh := s.clipGenerator.Generate(newCtx, scenesWithMediaCh)
	cachedClipsCh, metadataSaverErrCh := s.metadataSaver.Save(newCtx, clipsCh)
	mergedErrCh, err := channel_utils.MergeChannels(s.workerPool, generatorErrCh, mediaFileErrCh, clipErrCh, metadataSaverErrCh)
	if err != nil {
		s.logger.Error(err, "error merging error channels")
		return nil, err
	}

	clips, err := s.collectClips(newCtx, cachedClipsCh, mergedErrCh)
	if err != nil {
		s.logger.Error(err, "error collecting scene clips")
		return nil, err
	}
	sort.Sort(domain.SceneClipsAscByOrdinal(clips))

	mergedVideoFileName, err := s.concatenateClips.Concatenate(clips)
	if err != nil {
		s.logger.Error(err, "error concatenating scene clips")
		return nil, err
	}

	res, err := s.videoPublisher.Publish(newCtx, outbound.PublishVideoRequest{
		VideoFileName: mergedVideoFileName,
		StoryID:       request.StoryID,
		UserID:        request.UserID,
		OutputName:    request.OutputName,
	})
	if err != nil {
		s.logger.Error(err, "error publishing video")
		return nil, err
	}

	return &inbound.StoryVideoResponse{
		VideoLocation: res.Location,
		StoreRegion:   res.StoreRegion,
		Clips:         clips,
	}, nil
}

func (s *storyVideoPipeline) collectClips(ctx context.Context,
	clipsCh <-chan domain.SceneClip, errCh <-chan error) ([]domain.SceneClip, error) {
	clips := make([]domain.SceneClip, 0)
	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			s.logger.Error(err, "error in pipeline")
			return nil, err
		case <-ctx.Done():
			s.logger.Info("context cancelled")
			return nil, ctx.Err()
		case clip, ok := <-clipsCh:
			if !ok {
				return clips, nil
			} else {
				clips = append(clips, clip)
			}
		}
	}
}
