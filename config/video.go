package config

import (
	"fmt"
	"strconv"
)

type VideoConfig struct {
	FPS              int
	Width            int
	Height           int
	NarrationPadSec  float64
	MinSceneDuration float64
}

func GetVideoConfig() (*VideoConfig, error) {
	fps, err := strconv.Atoi(getEnvDefault("VIDEO_FPS", "24"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse VIDEO_FPS")
	}
	pad, err := strconv.ParseFloat(getEnvDefault("NARRATION_PAD_SEC", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse NARRATION_PAD_SEC")
	}

	return &VideoConfig{
		FPS:              fps,
		Width:            1280,
		Height:           720,
		NarrationPadSec:  pad,
		MinSceneDuration: 1.0,
	}, nil
}
