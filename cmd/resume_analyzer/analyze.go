package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf> [resume.pdf...]",
	Short: "Analyze one or more PDF resumes",
	Long:  "Analyze PDF resumes: extract contact details and skills, classify the field, predict the candidate level, and compute ATS and completeness scores. Results are written as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeUserID      string
	analyzeOutputFile  string
	analyzeSchemaFile  string
	analyzeConfigFile  string
	analyzeConcurrency int
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeUserID, "user-id", "", "Attach a user id to each result")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeSchemaFile, "schema", "", "Validate each result against this JSON schema file")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Parallel documents in batch mode (default: from config)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary of each analysis")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}

	concurrency := analyzeConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	var schemaContent string
	if analyzeSchemaFile != "" {
		data, err := os.ReadFile(analyzeSchemaFile)
		if err != nil {
			return fmt.Errorf("failed to read schema file: %w", err)
		}
		schemaContent = string(data)
	}

	a := analyzer.New()
	results := make([]*types.AnalysisResult, len(args))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range args {
		g.Go(func() error {
			result, err := analyzeFile(a, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, result := range results {
			printer.PrintAnalysis(result)
		}
	}

	jsonBytes, err := marshalResults(results)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if schemaContent != "" {
		for i, result := range results {
			single, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := schemas.ValidateJSONString(schemaContent, string(single)); err != nil {
				return fmt.Errorf("result for %s does not validate against schema: %w", args[i], err)
			}
		}
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}

func loadAnalyzeConfig() (config.Config, error) {
	defaults := config.Defaults()
	if analyzeConfigFile == "" {
		return defaults, nil
	}

	loaded, err := config.LoadConfig(analyzeConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return loaded.MergeWithDefaults(defaults), nil
}

func analyzeFile(a *analyzer.Analyzer, path string) (*types.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var identity *types.Identity
	if analyzeUserID != "" {
		identity = &types.Identity{
			UserID:   analyzeUserID,
			Filename: filepath.Base(path),
		}
		if err := identity.Validate(); err != nil {
			return nil, err
		}
	}

	return a.Analyze(data, identity)
}

// marshalResults renders a single result as an object and a batch as
// an array, so piping one file stays convenient.
func marshalResults(results []*types.AnalysisResult) ([]byte, error) {
	if len(results) == 1 {
		return json.MarshalIndent(results[0], "", "  ")
	}
	return json.MarshalIndent(results, "", "  ")
}
