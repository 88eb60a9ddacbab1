package config

import (
	"fmt"
	"os"
)

const (
	ImageBackendPlaceholder  = "placeholder"
	ImageBackendPollinations = "pollinations"
	ImageBackendDalle        = "dalle"
)

type ImageConfig struct {
	Backend string
	Width   int
	Height  int
}

func GetImageConfig() *ImageConfig {
	return &ImageConfig{
		Backend: getEnvDefault("IMAGE_BACKEND", ImageBackendPlaceholder),
		Width:   1024,
		Height:  576,
	}
}

type DaLLeConfig struct {
	ApiUrl string
	ApiKey string
	Size   string
	Model  string
}

func GetDaLLeConfig() (*DaLLeConfig, error) {
	apiUrl := os.Getenv("DALLE_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("DALLE_API_URL must be set")
	}
	apiKey := os.Getenv("DALLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("DALLE_API_KEY must be set")
	}

	return &DaLLeConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Size:   getEnvDefault("DALLE_SIZE", "1024x1024"),
		Model:  getEnvDefault("DALLE_MODEL", "dall-e-3"),
	}, nil
}
