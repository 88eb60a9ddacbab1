package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/inbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/application/services"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
	"github.com/YabsiraYetwale/StoryForgeAI/infrastructure/adapters"
)

const interruptExitCode = 130

type generateOptions struct {
	storyFile         string
	outputDir         string
	outputName        string
	voice             string
	imagesDir         string
	charactersFile    string
	analyzeCharacters bool
	visualPrompt      string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [story text]",
		Short: "Render a story into a narrated MP4",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.storyFile, "file", "f", "", "read the story from a text file")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "output", "directory for the finished video and scene manifest")
	cmd.Flags().StringVarP(&opts.outputName, "name", "n", "", "output file name (defaults to a timestamped name)")
	cmd.Flags().StringVarP(&opts.voice, "voice", "v", "", "narration voice")
	cmd.Flags().StringVarP(&opts.imagesDir, "images", "i", "", "use images from this folder instead of generating them")
	cmd.Flags().StringVarP(&opts.charactersFile, "characters", "c", "", "load character descriptions from a file")
	cmd.Flags().BoolVar(&opts.analyzeCharacters, "analyze-characters", false, "extract character descriptions from the story before planning")
	cmd.Flags().StringVarP(&opts.visualPrompt, "visual-prompt", "p", "", "extra style instruction applied to every scene image")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	story, err := resolveStory(args, opts.storyFile)
	if err != nil {
		return err
	}

	logger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}
	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		return err
	}
	defer workerPool.Release()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plannerConfig := config.GetPlannerConfig()
	imageConfig := config.GetImageConfig()
	ttsConfig := config.GetTTSConfig()
	videoConfig, err := config.GetVideoConfig()
	if err != nil {
		return err
	}

	contentFetcher := adapters.NewContentFetcher(logger)

	characters, err := resolveCharacters(cmd, opts, story, contentFetcher, plannerConfig, logger)
	if err != nil {
		return err
	}

	scenePlanner := pickScenePlanner(plannerConfig, logger)
	imageGenerator, err := pickImageGenerator(opts.imagesDir, imageConfig, contentFetcher, logger)
	if err != nil {
		return err
	}
	speechGenerator, err := pickSpeechGenerator(ttsConfig, contentFetcher, logger)
	if err != nil {
		return err
	}

	clipCreator := adapters.NewFFmpegSceneClipCreator(videoConfig, logger)
	concatenator := adapters.NewFFmpegVideoConcatenator(logger)
	publisher := adapters.NewLocalVideoPublisher(opts.outputDir, logger)
	sceneCache := adapters.NewManifestSceneCache(opts.outputDir, logger)

	sceneGenerator := services.NewSceneGenerator(logger, scenePlanner, workerPool)
	mediaGenerator := services.NewSceneMediaGenerator(logger, imageGenerator, speechGenerator, workerPool)
	clipGenerator := services.NewSceneClipGenerator(workerPool, clipCreator)
	metadataSaver := services.NewSceneMetadataSaver(logger, workerPool, sceneCache)

	pipeline := services.NewStoryVideoPipeline(sceneGenerator, mediaGenerator, clipGenerator,
		metadataSaver, concatenator, publisher, logger, workerPool)

	voice := opts.voice
	if voice == "" {
		voice = ttsConfig.DefaultVoice
	}

	res, err := pipeline.StartPipeline(ctx, inbound.StartPipelineParams{
		StoryID:           uuid.NewString(),
		Input:             story,
		Voice:             voice,
		OutputName:        normalizeOutputName(opts.outputName),
		Characters:        characters,
		VisualInstruction: opts.visualPrompt,
	})
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("interrupted, stopping pipeline")
			os.Exit(interruptExitCode)
		}
		return err
	}

	logger.InfoWithFields("video ready", map[string]interface{}{
		"location": res.VideoLocation,
		"scenes":   len(res.Clips),
	})

	return nil
}

func resolveStory(args []string, storyFile string) (string, error) {
	if storyFile != "" {
		data, err := os.ReadFile(storyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read story file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return "", errors.New("provide a story as an argument or via --file")
}

func resolveCharacters(cmd *cobra.Command, opts *generateOptions, story string,
	contentFetcher adapters.ContentFetcher, plannerConfig *config.PlannerConfig,
	logger outbound.LoggerPort) ([]domain.Character, error) {
	if opts.charactersFile != "" {
		return adapters.LoadCharactersFromFile(opts.charactersFile)
	}
	if !opts.analyzeCharacters {
		return nil, nil
	}
	if !plannerConfig.Enabled() {
		logger.Warn("character analysis needs an LLM endpoint, skipping")
		return nil, nil
	}

	analyzer := adapters.NewOpenAICharacterAnalyzer(contentFetcher, plannerConfig, logger)
	characters, err := analyzer.Analyze(cmd.Context(), story)
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("characters extracted", map[string]interface{}{
		"count": len(characters),
	})
	return characters, nil
}

func pickScenePlanner(plannerConfig *config.PlannerConfig, logger outbound.LoggerPort) outbound.ScenePlannerPort {
	if plannerConfig.Enabled() {
		return adapters.NewOpenAIScenePlanner(plannerConfig, logger)
	}
	logger.Info("no LLM endpoint configured, planning scenes from paragraphs")
	return adapters.NewParagraphScenePlanner()
}

func pickImageGenerator(imagesDir string, imageConfig *config.ImageConfig,
	contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) (outbound.ImageGeneratorPort, error) {
	if imagesDir != "" {
		return adapters.NewFolderImageSource(imagesDir)
	}

	switch imageConfig.Backend {
	case config.ImageBackendPollinations:
		return adapters.NewPollinationsImageGenerator(contentFetcher, imageConfig, logger), nil
	case config.ImageBackendDalle:
		dalleConfig, err := config.GetDaLLeConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewDalleImageGenerator(contentFetcher, dalleConfig, logger), nil
	case config.ImageBackendPlaceholder:
		return adapters.NewPlaceholderImageGenerator(imageConfig, logger), nil
	default:
		return nil, fmt.Errorf("unknown image backend %q", imageConfig.Backend)
	}
}

func pickSpeechGenerator(ttsConfig *config.TTSConfig, contentFetcher adapters.ContentFetcher,
	logger outbound.LoggerPort) (outbound.SpeechGeneratorPort, error) {
	switch ttsConfig.Backend {
	case config.TTSBackendElevenLabs:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewElevenLabsSpeechGenerator(contentFetcher, elevenLabsConfig), nil
	case config.TTSBackendEdge:
		return adapters.NewEdgeSpeechGenerator(ttsConfig, logger)
	default:
		return nil, fmt.Errorf("unknown tts backend %q", ttsConfig.Backend)
	}
}

func normalizeOutputName(name string) string {
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, ".mp4") {
		name += ".mp4"
	}
	return name
}
