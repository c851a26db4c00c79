package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Work with built-in document presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered document presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range presets.List() {
			fmt.Printf("%-20s %s\n", p.Name, p.Description)
		}
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset's rendered prompt text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := presets.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(p.Build().Build())
		return nil
	},
}

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Work with narrative industry context snippets",
}

var snippetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available context snippets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range presets.ContextSnippets() {
			heading := strings.SplitN(s.Text, "\n", 2)[0]
			fmt.Printf("%-20s %s\n", s.Name, heading)
		}
	},
}

var snippetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a snippet's full context text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := presets.GetSnippet(args[0])
		if err != nil {
			return err
		}
		fmt.Println(s.Text)
		return nil
	},
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	snippetsCmd.AddCommand(snippetsListCmd)
	snippetsCmd.AddCommand(snippetsShowCmd)
	presetsCmd.AddCommand(snippetsCmd)
	rootCmd.AddCommand(presetsCmd)
}
