package main

import (
	"os"

	"github.com/A1exanderAlexeyuk/LlmPrompts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
