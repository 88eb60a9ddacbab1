package dto

type CreateStoryRequest struct {
	Input        string `json:"input" binding:"required"`
	VoiceID      string `json:"voice_id" binding:"required"`
	OutputName   string `json:"output_name,omitempty"`
	VisualPrompt string `json:"visual_prompt,omitempty"`
}
