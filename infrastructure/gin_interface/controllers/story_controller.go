package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
	"github.com/YabsiraYetwale/StoryForgeAI/infrastructure/gin_interface/dto"
	"github.com/YabsiraYetwale/StoryForgeAI/middleware"
)

type StoryController interface {
	CreateStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger        outbound.LoggerPort
	videoPipeline inbound.StoryVideoPipelinePort
}

func NewStoryController(
	logger outbound.LoggerPort,
	videoPipeline inbound.StoryVideoPipelinePort,
) StoryController {
	return &storyController{
		logger:        logger,
		videoPipeline: videoPipeline,
	}
}

func (s *storyController) CreateStory(c *gin.Context) {
	var createStoryRequest dto.CreateStoryRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()
	if err := c.ShouldBindJSON(&createStoryRequest); err != nil {
		err = c.AbortWithError(400, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	storyID := uuid.NewString()
	userID := c.GetString(middleware.ContextUserIDKey)

	res, err := s.videoPipeline.StartPipeline(newCtx, inbound.StartPipelineParams{
		StoryID:           storyID,
		Input:             createStoryRequest.Input,
		Voice:             createStoryRequest.VoiceID,
		UserID:            userID,
		OutputName:        createStoryRequest.OutputName,
		VisualInstruction: createStoryRequest.VisualPrompt,
	})
	if err != nil {
		err = c.AbortWithError(500, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	events := make([]domain.SceneClipEvent, 0, len(res.Clips))
	for _, clip := range res.Clips {
		events = append(events, clip.ToEvent())
	}

	c.JSON(200, dto.CreateStoryResponse{
		StoryID:       storyID,
		VideoLocation: res.VideoLocation,
		StoreRegion:   res.StoreRegion,
		Scenes:        events,
	})
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/stories", s.CreateStory)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
