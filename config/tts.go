package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	TTSBackendEdge       = "edge"
	TTSBackendElevenLabs = "elevenlabs"
)

type TTSConfig struct {
	Backend      string
	DefaultVoice string
	EdgeCommand  string
}

func GetTTSConfig() *TTSConfig {
	return &TTSConfig{
		Backend:      getEnvDefault("TTS_BACKEND", TTSBackendEdge),
		DefaultVoice: getEnvDefault("TTS_VOICE", "en-US-JennyNeural"),
		EdgeCommand:  getEnvDefault("EDGE_TTS_COMMAND", "edge-tts"),
	}
}

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_URL must be set")
	}
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_MODEL_ID must be set")
	}
	stability, err := strconv.ParseFloat(getEnvDefault("ELEVEN_LABS_STABILITY", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELEVEN_LABS_STABILITY")
	}
	similarityBoost, err := strconv.ParseFloat(getEnvDefault("ELEVEN_LABS_SIMILARITY_BOOST", "0.75"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELEVEN_LABS_SIMILARITY_BOOST")
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}, nil
}
