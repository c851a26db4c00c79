package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/config"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/export"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/manifest"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build [manifests...]",
	Short: "Build prompt documents from YAML manifests",
	Long: `Resolves the given manifest paths or glob patterns (config defaults are
used when none are given), assembles each manifest into a prompt document,
and writes the result in the configured format.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("format", "", "output format: text, json, or html (overrides config)")
	buildCmd.Flags().Bool("stdout", false, "print the prompt text of a single manifest instead of writing files")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = config.OutputFormat(format)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Manifests
	}

	paths, err := manifest.Resolve(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no manifests matched %v", patterns)
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		if len(paths) != 1 {
			return fmt.Errorf("--stdout requires exactly one manifest, got %d", len(paths))
		}
		doc, err := manifest.Load(paths[0])
		if err != nil {
			return err
		}
		b, err := doc.ToBuilder()
		if err != nil {
			return fmt.Errorf("manifest %s: %w", paths[0], err)
		}
		fmt.Println(b.Build())
		return nil
	}

	writer := export.NewWriter(cfg.Format, cfg.OutputDir)
	names := export.OutputNames(paths)

	var reporter progress.Reporter
	if len(paths) > 1 {
		reporter = progress.NewReporter()
		reporter.Start(len(paths))
	}

	for i, path := range paths {
		doc, err := manifest.Load(path)
		if err != nil {
			return err
		}
		b, err := doc.ToBuilder()
		if err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}

		written, err := writer.Write(names[path], b)
		if err != nil {
			return err
		}
		if reporter != nil {
			reporter.Update(i+1, b.Title)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", written)
		}
	}

	if reporter != nil {
		reporter.Finish()
	}
	fmt.Fprintf(os.Stderr, "Built %d prompt document(s) into %s\n", len(paths), cfg.OutputDir)
	return nil
}
