package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type sceneGenerator struct {
	logger       outbound.LoggerPort
	scenePlanner outbound.ScenePlannerPort
	workerPool   outbound.TaskDispatcher
}

func NewSceneGenerator(logger outbound.LoggerPort, scenePlanner outbound.ScenePlannerPort,
	workerPool outbound.TaskDispatcher) inbound.SceneGeneratorPort {
	return &sceneGenerator{
		logger:       logger,
		scenePlanner: scenePlanner,
		workerPool:   workerPool,
	}
}

func (s *sceneGenerator) Generate(ctx context.Context, params inbound.GenerateScenesParams) (<-chan domain.Scene, <-chan error) {
	out := make(chan domain.Scene)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		breakdown, err := s.scenePlanner.Plan(newCtx, outbound.PlanScenesRequest{
			Story:             params.Story,
			Characters:        params.Characters,
			VisualInstruction: params.VisualInstruction,
		})
		if err != nil {
			s.logger.Error(err, "Failed to plan scenes")
			errCh <- err
			return
		}

		s.logger.InfoWithFields("story broken into scenes", map[string]interface{}{
			"title":  breakdown.Title,
			"scenes": len(breakdown.Scenes),
		})

		for _, scene := range breakdown.Scenes {
			scene.ID = uuid.NewString()
			scene.StoryID = params.StoryID
			select {
			case <-newCtx.Done():
				return
			case out <- scene:
			}
		}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit task to worker pool")
		errCh <- err
	}

	return out, errCh
}
