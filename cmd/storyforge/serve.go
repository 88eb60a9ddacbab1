package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/YabsiraYetwale/StoryForgeAI/application/services"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/infrastructure/adapters"
	"github.com/YabsiraYetwale/StoryForgeAI/infrastructure/gin_interface/controllers"
	"github.com/YabsiraYetwale/StoryForgeAI/middleware"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the story rendering HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(addr string) error {
	logger := adapters.NewZerologWrapper()

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		return err
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		return err
	}
	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		return err
	}

	plannerConfig := config.GetPlannerConfig()
	imageConfig := config.GetImageConfig()
	ttsConfig := config.GetTTSConfig()
	videoConfig, err := config.GetVideoConfig()
	if err != nil {
		return err
	}

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}
	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		return err
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(logger)

	scenePlanner := pickScenePlanner(plannerConfig, logger)
	imageGenerator, err := pickImageGenerator("", imageConfig, contentFetcher, logger)
	if err != nil {
		return err
	}
	speechGenerator, err := pickSpeechGenerator(ttsConfig, contentFetcher, logger)
	if err != nil {
		return err
	}

	clipCreator := adapters.NewFFmpegSceneClipCreator(videoConfig, logger)
	concatenator := adapters.NewFFmpegVideoConcatenator(logger)
	publisher := adapters.NewS3VideoPublisher(logger, s3Client, s3Config)
	sceneCache := adapters.NewDynamoSceneCache(logger, dynamoClient, dynamoConfig)

	sceneGenerator := services.NewSceneGenerator(logger, scenePlanner, workerPool)
	mediaGenerator := services.NewSceneMediaGenerator(logger, imageGenerator, speechGenerator, workerPool)
	clipGenerator := services.NewSceneClipGenerator(workerPool, clipCreator)
	metadataSaver := services.NewSceneMetadataSaver(logger, workerPool, sceneCache)

	pipeline := services.NewStoryVideoPipeline(sceneGenerator, mediaGenerator, clipGenerator,
		metadataSaver, concatenator, publisher, logger, workerPool)

	storyController := controllers.NewStoryController(logger, pipeline)

	router := gin.Default()
	if err = router.SetTrustedProxies(nil); err != nil {
		return err
	}

	authHandler, err := middleware.NewAuthHandler(authConfig.JwksUrl)
	if err != nil {
		return err
	}

	router.Use(authHandler.AuthMiddleware())
	router.Use(middleware.SSEMiddleware(workerPool))

	storyController.RegisterRoutes(router)

	return router.Run(addr)
}
