package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Create a prompt manifest interactively",
	RunE:  runWizard,
}

func init() {
	wizardCmd.Flags().StringP("out", "o", "prompt.yaml", "path for the generated manifest")
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	doc, err := wizard.CollectInteractive()
	if err != nil {
		return fmt.Errorf("collecting manifest: %w", err)
	}

	out, _ := cmd.Flags().GetString("out")
	if err := wizard.Save(doc, out); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Manifest saved to %s\n", out)
	fmt.Fprintf(os.Stderr, "Build it with: llmprompts build %s\n", out)
	return nil
}
