package main

import (
	"os"

	"github.com/YabsiraYetwale/StoryForgeAI/config"
)

func main() {
	config.LoadDotEnv()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
