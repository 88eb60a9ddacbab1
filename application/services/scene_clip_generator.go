package services

import (
	"context"
	"sync"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type sceneClipGenerator struct {
	workerPool  outbound.TaskDispatcher
	clipCreator outbound.SceneClipCreator
}

func NewSceneClipGenerator(workerPool outbound.TaskDispatcher, clipCreator outbound.SceneClipCreator) inbound.SceneClipGeneratorPort {
	return &sceneClipGenerator{
		workerPool:  workerPool,
		clipCreator: clipCreator,
	}
}

func (g *sceneClipGenerator) Generate(ctx context.Context, scenes <-chan domain.SceneWithMediaFiles) (<-chan domain.SceneClip, <-chan error) {
	out := make(chan domain.SceneClip)
	errCh := make(chan error, 5)
	newCtx, cancel := context.WithCancel(ctx)
	err := g.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()
		var wg sync.WaitGroup
		for s := range scenes {
			select {
			case <-newCtx.Done():
				return
			default:
				scene := s
				wg.Add(1)
				err := g.workerPool.Submit(func() {
					defer wg.Done()
					clipCreationRes, err := g.clipCreator.Create(outbound.CreateSceneClipParams{
						ImageFileName: scene.ImageFileName,
						AudioFileName: scene.AudioFileName,
						Ordinal:       scene.Number,
					})
					if err != nil {
						select {
						case errCh <- err:
						case <-newCtx.Done():
						}
						return
					}
					select {
					case out <- domain.SceneClip{
						ID:       scene.ID,
						StoryID:  scene.StoryID,
						Ordinal:  scene.Number,
						Text:     scene.NarrationText,
						FileName: clipCreationRes.FileName,
						Duration: clipCreationRes.Duration,
					}:
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
