package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharacterPayload_WrappedList(t *testing.T) {
	characters := parseCharacterPayload(`{"characters":[{"name":"Ana","description":"a young sailor"}]}`)
	require.Len(t, characters, 1)
	assert.Equal(t, "Ana", characters[0].Name)
	assert.Equal(t, "a young sailor", characters[0].Description)
}

func TestParseCharacterPayload_BareArray(t *testing.T) {
	characters := parseCharacterPayload(`[{"name":"Tom","description":"an old lighthouse keeper"}]`)
	require.Len(t, characters, 1)
	assert.Equal(t, "Tom", characters[0].Name)
}

func TestParseCharacterPayload_FencedReply(t *testing.T) {
	characters := parseCharacterPayload("```json\n{\"characters\":[{\"name\":\"Ana\",\"description\":\"a sailor\"}]}\n```")
	require.Len(t, characters, 1)
	assert.Equal(t, "Ana", characters[0].Name)
}

func TestParseCharacterPayload_Garbage(t *testing.T) {
	assert.Empty(t, parseCharacterPayload("the model rambled instead of answering"))
}
