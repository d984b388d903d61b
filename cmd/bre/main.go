package main

import (
	"os"

	"github.com/anivratgoel/carepal-id-bre/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
