package outbound

type CreateSceneClipParams struct {
	ImageFileName string
	AudioFileName string
	Ordinal       int
}

type CreateSceneClipResponse struct {
	FileName string
	Duration float64
}

// SceneClipCreator turns a still image plus a narration clip into a short
// video segment with camera motion.
type SceneClipCreator interface {
	Create(params CreateSceneClipParams) (*CreateSceneClipResponse, error)
}
