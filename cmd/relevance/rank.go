package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/observability"
	"github.com/jonathan/resume-relevance/internal/types"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Rank a pool of resumes against one job description",
	Long: `Scores every resume profile in a directory against a single job profile and prints the candidates ordered by score, highest first. Ties keep the order the resumes were read in.

Either the whole pool ranks or the command fails; a resume that cannot be scored aborts the batch with its identifier.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath string
	rankResumeDir  string
	rankJobPath    string
	rankJSONOutput bool
)

func init() {
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rankCommand.Flags().StringVarP(&rankResumeDir, "resumes", "r", "", "Path to a directory of resume profile JSON files")
	rankCommand.Flags().StringVarP(&rankJobPath, "job", "j", "", "Path to job profile JSON file")
	rankCommand.Flags().BoolVar(&rankJSONOutput, "json", false, "Print the ranking as JSON instead of a formatted table")

	_ = rankCommand.MarkFlagRequired("resumes")
	_ = rankCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rankConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	job, err := loadJobProfile(rankJobPath)
	if err != nil {
		return err
	}
	resumes, err := loadResumeDir(rankResumeDir)
	if err != nil {
		return err
	}

	engine, embedder, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer embedder.Close()

	entries, err := engine.Rank(ctx, job, resumes)
	if err != nil {
		return fmt.Errorf("rank failed: %w", err)
	}

	if rankJSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	observability.NewPrinter(os.Stdout).PrintRankedEntries(entries)
	return nil
}

// loadResumeDir reads every .json file in dir as a resume profile, in
// file-name order so tie-breaking stays reproducible across runs.
func loadResumeDir(dir string) ([]*types.ResumeProfile, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	resumes := make([]*types.ResumeProfile, 0, len(paths))
	for _, path := range paths {
		profile, err := loadResumeProfile(path)
		if err != nil {
			return nil, err
		}
		if profile.DisplayName == "" {
			profile.DisplayName = filepath.Base(path)
		}
		resumes = append(resumes, profile)
	}
	return resumes, nil
}
