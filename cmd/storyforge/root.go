package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storyforge",
		Short:         "Turn a written story into a narrated video",
		Long:          "StoryForge breaks a story into scenes, renders an image and a narration clip per scene, and stitches the result into a single MP4.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
