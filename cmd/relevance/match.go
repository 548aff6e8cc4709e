package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/observability"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job description",
	Long: `Computes the composite relevance score for a single resume-job pair and prints the explainable breakdown: hard (skill) match, semantic match, matched and missing skills, and the verdict.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath string
	matchResumePath string
	matchJobPath    string
	matchJSONOutput bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCommand.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume profile JSON file")
	matchCommand.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job profile JSON file")
	matchCommand.Flags().BoolVar(&matchJSONOutput, "json", false, "Print the result as JSON instead of a formatted breakdown")

	_ = matchCommand.MarkFlagRequired("resume")
	_ = matchCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(matchConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	resume, err := loadResumeProfile(matchResumePath)
	if err != nil {
		return err
	}
	job, err := loadJobProfile(matchJobPath)
	if err != nil {
		return err
	}

	engine, embedder, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer embedder.Close()

	result, err := engine.Match(ctx, resume, job)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if matchJSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}
