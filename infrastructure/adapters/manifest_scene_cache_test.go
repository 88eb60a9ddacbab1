package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

func TestManifestSceneCache_WritesSortedManifest(t *testing.T) {
	runDir := filepath.Join(t.TempDir(), "run")
	cache := NewManifestSceneCache(runDir, NewZerologWrapper())

	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, domain.SceneClip{ID: "b", StoryID: "s", Ordinal: 2, Text: "second", Duration: 3.5}))
	require.NoError(t, cache.Save(ctx, domain.SceneClip{ID: "a", StoryID: "s", Ordinal: 1, Text: "first", Duration: 2.0}))

	raw, err := os.ReadFile(filepath.Join(runDir, manifestFileName))
	require.NoError(t, err)

	var events []domain.SceneClipEvent
	require.NoError(t, json.Unmarshal(raw, &events))
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Ordinal)
	assert.Equal(t, "first", events[0].Text)
	assert.Equal(t, 2, events[1].Ordinal)
	assert.Equal(t, 3.5, events[1].Duration)
}
