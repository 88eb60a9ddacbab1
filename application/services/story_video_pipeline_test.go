package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
	"github.com/YabsiraYetwale/StoryForgeAI/infrastructure/adapters"
)

type fakeScenePlanner struct {
	breakdown *domain.SceneBreakdown
	err       error
}

func (f *fakeScenePlanner) Plan(_ context.Context, _ outbound.PlanScenesRequest) (*domain.SceneBreakdown, error) {
	return f.breakdown, f.err
}

type fakeImageGenerator struct{}

func (f *fakeImageGenerator) Generate(_ context.Context, _ domain.Scene) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("image bytes")), nil
}

type fakeSpeechGenerator struct{}

func (f *fakeSpeechGenerator) Generate(_ context.Context, _ outbound.GenerateSpeechRequest) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("audio bytes")), nil
}

type fakeClipCreator struct {
	mu      sync.Mutex
	created []outbound.CreateSceneClipParams
}

func (f *fakeClipCreator) Create(params outbound.CreateSceneClipParams) (*outbound.CreateSceneClipResponse, error) {
	_ = os.Remove(params.ImageFileName)
	_ = os.Remove(params.AudioFileName)

	f.mu.Lock()
	f.created = append(f.created, params)
	f.mu.Unlock()

	return &outbound.CreateSceneClipResponse{
		FileName: fmt.Sprintf("clip-%d.mp4", params.Ordinal),
		Duration: float64(params.Ordinal),
	}, nil
}

type fakeConcatenator struct {
	clips []domain.SceneClip
}

func (f *fakeConcatenator) Concatenate(clips []domain.SceneClip) (string, error) {
	f.clips = clips
	return "merged.mp4", nil
}

type fakePublisher struct{}

func (f *fakePublisher) Publish(_ context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	return &outbound.PublishVideoResponse{Location: "/videos/" + req.VideoFileName}, nil
}

type fakeSceneCache struct {
	mu    sync.Mutex
	saved []domain.SceneClip
	err   error
}

func (f *fakeSceneCache) Save(_ context.Context, clip domain.SceneClip) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.saved = append(f.saved, clip)
	f.mu.Unlock()
	return nil
}

func testBreakdown(count int) *domain.SceneBreakdown {
	scenes := make([]domain.Scene, 0, count)
	for i := 1; i <= count; i++ {
		scenes = append(scenes, domain.NewScene(i, fmt.Sprintf("scene %d", i), fmt.Sprintf("narration %d", i), 5.0))
	}
	return &domain.SceneBreakdown{Title: "Test Story", Scenes: scenes}
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	workerPool, err := ants.NewPool(20)
	require.NoError(t, err)
	t.Cleanup(workerPool.Release)
	return workerPool
}

func TestSceneGenerator_AssignsIdentifiers(t *testing.T) {
	workerPool := newTestPool(t)
	logger := adapters.NewZerologWrapper()

	generator := NewSceneGenerator(logger, &fakeScenePlanner{breakdown: testBreakdown(3)}, workerPool)

	outCh, errCh := generator.Generate(context.Background(), inbound.GenerateScenesParams{
		Story:   "a story",
		StoryID: "story-1",
	})

	var scenes []domain.Scene
	for scene := range outCh {
		scenes = append(scenes, scene)
	}
	for err := range errCh {
		t.Fatal("Received an error:", err)
	}

	require.Len(t, scenes, 3)
	for i, scene := range scenes {
		assert.Equal(t, i+1, scene.Number)
		assert.NotEmpty(t, scene.ID)
		assert.Equal(t, "story-1", scene.StoryID)
	}
}

func TestSceneGenerator_PlannerError(t *testing.T) {
	workerPool := newTestPool(t)
	logger := adapters.NewZerologWrapper()

	generator := NewSceneGenerator(logger, &fakeScenePlanner{err: errors.New("planner down")}, workerPool)

	outCh, errCh := generator.Generate(context.Background(), inbound.GenerateScenesParams{Story: "a story"})

	for range outCh {
		t.Fatal("expected no scenes")
	}

	var received error
	for err := range errCh {
		received = err
	}
	assert.EqualError(t, received, "planner down")
}

func TestSceneMetadataSaver_PropagatesCacheError(t *testing.T) {
	workerPool := newTestPool(t)
	logger := adapters.NewZerologWrapper()

	saver := NewSceneMetadataSaver(logger, workerPool, &fakeSceneCache{err: errors.New("table missing")})

	clips := make(chan domain.SceneClip, 1)
	clips <- domain.SceneClip{ID: "a", Ordinal: 1}
	close(clips)

	outCh, errCh := saver.Save(context.Background(), clips)

	var received error
	done := false
	for !done {
		select {
		case err, ok := <-errCh:
			if ok {
				received = err
			} else {
				done = true
			}
		case _, ok := <-outCh:
			if !ok {
				done = true
			}
		}
	}
	assert.EqualError(t, received, "table missing")
}

func TestStoryVideoPipeline_EndToEnd(t *testing.T) {
	workerPool := newTestPool(t)
	logger := adapters.NewZerologWrapper()

	clipCreator := &fakeClipCreator{}
	concatenator := &fakeConcatenator{}
	sceneCache := &fakeSceneCache{}

	sceneGenerator := NewSceneGenerator(logger, &fakeScenePlanner{breakdown: testBreakdown(4)}, workerPool)
	mediaGenerator := NewSceneMediaGenerator(logger, &fakeImageGenerator{}, &fakeSpeechGenerator{}, workerPool)
	clipGenerator := NewSceneClipGenerator(workerPool, clipCreator)
	metadataSaver := NewSceneMetadataSaver(logger, workerPool, sceneCache)

	pipeline := NewStoryVideoPipeline(sceneGenerator, mediaGenerator, clipGenerator,
		metadataSaver, concatenator, &fakePublisher{}, logger, workerPool)

	res, err := pipeline.StartPipeline(context.Background(), inbound.StartPipelineParams{
		StoryID: "story-1",
		Input:   "a story",
		Voice:   "en-US-JennyNeural",
	})
	require.NoError(t, err)

	require.Len(t, res.Clips, 4)
	for i, clip := range res.Clips {
		assert.Equal(t, i+1, clip.Ordinal)
		assert.Equal(t, "story-1", clip.StoryID)
		assert.Equal(t, fmt.Sprintf("narration %d", i+1), clip.Text)
	}

	assert.Equal(t, "/videos/merged.mp4", res.VideoLocation)
	assert.Len(t, concatenator.clips, 4)
	assert.Len(t, sceneCache.saved, 4)
	assert.Len(t, clipCreator.created, 4)
}
