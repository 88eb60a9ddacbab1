package config

import "os"

const defaultChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

type PlannerConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		ApiUrl: getEnvDefault("OPENAI_API_BASE", defaultChatCompletionsURL),
		ApiKey: os.Getenv("OPENAI_API_KEY"),
		Model:  getEnvDefault("SCENE_MODEL", "gpt-4o-mini"),
	}
}

// Enabled reports whether an LLM planner is configured at all. Without a key
// or a self-hosted endpoint the pipeline falls back to the paragraph split.
func (c *PlannerConfig) Enabled() bool {
	return c.ApiKey != "" || os.Getenv("OPENAI_API_BASE") != ""
}
