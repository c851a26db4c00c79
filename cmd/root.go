package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "llmprompts",
	Short: "Compose structured analytical prompts for LLM consumption",
	Long: `llmprompts assembles trees of typed building blocks (roles, departments,
context, analysis branches, questions, requirements) into structured
natural-language prompts. Documents are described in YAML manifests or
built from named presets and rendered as text, JSON, or HTML.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".llmprompts.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
