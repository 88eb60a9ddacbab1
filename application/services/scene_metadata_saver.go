package services

import (
	"context"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type sceneMetadataSaver struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	sceneCache outbound.SceneCachePort
}

func NewSceneMetadataSaver(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	sceneCache outbound.SceneCachePort) inbound.SceneMetadataSaverPort {
	return &sceneMetadataSaver{
		logger:     logger,
		workerPool: workerPool,
		sceneCache: sceneCache,
	}
}

func (s *sceneMetadataSaver) Save(ctx context.Context, clips <-chan domain.SceneClip) (<-chan domain.SceneClip, <-chan error) {
	out := make(chan domain.SceneClip)
	errCh := make(chan error)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()
		for clip := range clips {
			select {
			case <-newCtx.Done():
				return
			default:
				err := s.sceneCache.Save(newCtx, clip)
				if err != nil {
					errCh <- err
					return
				} else {
					s.logger.DebugWithFields("scene clip saved", map[string]interface{}{
						"id":      clip.ID,
						"ordinal": clip.Ordinal,
					})
					out <- clip
				}
			}
		}
		s.logger.Debug("scene metadata saving complete")
	})

	if err != nil {
		errCh <- err
		cancel()
	}

	return out, errCh
}
