package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

// LoadCharactersFromFile reads character descriptions from a JSON file
// ({"characters": [...]}, a bare array, or a single object) or from a plain
// text file of "Name: description" lines.
func LoadCharactersFromFile(path string) ([]domain.Character, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if characters := parseCharacterJSON(text); characters != nil {
			return characters, nil
		}
	}

	return parseCharacterLines(text), nil
}

func parseCharacterJSON(text string) []domain.Character {
	var wrapped characterList
	if err := json.Unmarshal([]byte(text), &wrapped); err == nil && len(wrapped.Characters) > 0 {
		return wrapped.Characters
	}

	var bare []domain.Character
	if err := json.Unmarshal([]byte(text), &bare); err == nil && len(bare) > 0 {
		return bare
	}

	var single domain.Character
	if err := json.Unmarshal([]byte(text), &single); err == nil && single.Name != "" && single.Description != "" {
		return []domain.Character{single}
	}

	return nil
}

func parseCharacterLines(text string) []domain.Character {
	var out []domain.Character
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.SplitN(line, "#", 2)[0])
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		name, desc, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name != "" && desc != "" {
			out = append(out, domain.Character{Name: name, Description: desc})
		}
	}
	return out
}
