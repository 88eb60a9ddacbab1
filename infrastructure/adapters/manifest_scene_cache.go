package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

const manifestFileName = "scenes.json"

// manifestSceneCache records rendered scene metadata as a scenes.json file in
// the run directory. CLI counterpart of the Dynamo cache.
type manifestSceneCache struct {
	logger outbound.LoggerPort
	runDir string

	mu    sync.Mutex
	clips []domain.SceneClipEvent
}

func NewManifestSceneCache(runDir string, logger outbound.LoggerPort) outbound.SceneCachePort {
	return &manifestSceneCache{
		logger: logger,
		runDir: runDir,
	}
}

func (c *manifestSceneCache) Save(_ context.Context, clip domain.SceneClip) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clips = append(c.clips, clip.ToEvent())
	sort.Slice(c.clips, func(i, j int) bool { return c.clips[i].Ordinal < c.clips[j].Ordinal })

	payload, err := json.MarshalIndent(c.clips, "", "  ")
	if err != nil {
		c.logger.Error(err, "Failed to marshal scene manifest")
		return err
	}

	if err := os.MkdirAll(c.runDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.runDir, manifestFileName), payload, 0o644)
}
