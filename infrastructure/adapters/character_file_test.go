package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCharactersFromFile_JSON(t *testing.T) {
	path := writeTempFile(t, "characters.json",
		`{"characters":[{"name":"Mira","description":"a tall woman in a red coat"},{"name":"Rex","description":"a grey wolfhound"}]}`)

	characters, err := LoadCharactersFromFile(path)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, "Mira", characters[0].Name)
	assert.Equal(t, "a grey wolfhound", characters[1].Description)
}

func TestLoadCharactersFromFile_BareJSONArray(t *testing.T) {
	path := writeTempFile(t, "cast.json", `[{"name":"Mira","description":"a tall woman"}]`)

	characters, err := LoadCharactersFromFile(path)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Mira", characters[0].Name)
}

func TestLoadCharactersFromFile_PlainLines(t *testing.T) {
	path := writeTempFile(t, "cast.txt", `
# main cast
Mira: a tall woman in a red coat
Rex: a grey wolfhound # loyal

not a character line
`)

	characters, err := LoadCharactersFromFile(path)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, "a grey wolfhound", characters[1].Description)
}

func TestLoadCharactersFromFile_Missing(t *testing.T) {
	_, err := LoadCharactersFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCharactersFromFile_Empty(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "   \n")

	characters, err := LoadCharactersFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, characters)
}
