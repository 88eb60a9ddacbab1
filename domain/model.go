package domain

// Scene is a single unit of the story: what the viewer sees and what the
// narrator says while they see it.
type Scene struct {
	ID              string  `json:"id,omitempty"`
	StoryID         string  `json:"story_id,omitempty"`
	Number          int     `json:"scene_number"`
	Description     string  `json:"description"`
	NarrationText   string  `json:"narration_text"`
	DurationHintSec float64 `json:"duration_hint_sec"`
}

type SceneBreakdown struct {
	Title  string  `json:"title"`
	Scenes []Scene `json:"scenes"`
}

type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewScene(number int, description string, narrationText string, durationHint float64) Scene {
	return Scene{
		Number:          number,
		Description:     description,
		NarrationText:   narrationText,
		DurationHintSec: durationHint,
	}
}

// SceneWithMediaFiles carries a scene plus the on-disk image and narration
// clip generated for it.
type SceneWithMediaFiles struct {
	Scene
	ImageFileName string
	AudioFileName string
}

// SceneClip is a rendered per-scene video file, ready for concatenation.
type SceneClip struct {
	ID       string
	StoryID  string
	Ordinal  int
	Text     string
	FileName string
	Duration float64
}

type SceneClipsAscByOrdinal []SceneClip

func (s SceneClipsAscByOrdinal) Len() int           { return len(s) }
func (s SceneClipsAscByOrdinal) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s SceneClipsAscByOrdinal) Less(i, j int) bool { return s[i].Ordinal < s[j].Ordinal }

type SceneClipEvent struct {
	StoryID  string  `json:"story_id"`
	SceneID  string  `json:"scene_id"`
	Text     string  `json:"text"`
	Ordinal  int     `json:"ordinal"`
	Duration float64 `json:"duration"`
}

func (s SceneClip) ToEvent() SceneClipEvent {
	return SceneClipEvent{
		StoryID:  s.StoryID,
		SceneID:  s.ID,
		Text:     s.Text,
		Ordinal:  s.Ordinal,
		Duration: s.Duration,
	}
}
