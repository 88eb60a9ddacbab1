package adapters

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("scene_2.png", "scene_10.png"))
	assert.False(t, naturalLess("scene_10.png", "scene_2.png"))
	assert.True(t, naturalLess("a.png", "b.png"))
	assert.True(t, naturalLess("img1.png", "img1a.png"))
	assert.False(t, naturalLess("Scene_3.png", "scene_2.png"))
}

func TestFolderImageSource_NaturalOrderAndClamping(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"scene_10.png": "ten",
		"scene_2.png":  "two",
		"scene_1.png":  "one",
		"notes.txt":    "ignored",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	source, err := NewFolderImageSource(dir)
	require.NoError(t, err)

	readScene := func(number int) string {
		reader, err := source.Generate(context.Background(), domain.Scene{Number: number})
		require.NoError(t, err)
		defer reader.Close()
		data, err := io.ReadAll(reader)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, "one", readScene(1))
	assert.Equal(t, "two", readScene(2))
	assert.Equal(t, "ten", readScene(3))
	assert.Equal(t, "ten", readScene(9))
	assert.Equal(t, "one", readScene(0))
}

func TestFolderImageSource_EmptyFolder(t *testing.T) {
	_, err := NewFolderImageSource(t.TempDir())
	assert.Error(t, err)
}
