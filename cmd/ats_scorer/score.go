package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/spf13/cobra"
)

var (
	scoreResume   string
	scoreJob      string
	scoreJobURL   string
	scoreConfig   string
	scoreJSON     bool
	scoreDetailed bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long: `Score a resume file (PDF, DOCX, or TXT) against a job posting
supplied as a local file or fetched from a URL.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResume, "resume", "", "Path to resume file (PDF, DOCX, or TXT)")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to job posting text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the raw JSON result")
	scoreCmd.Flags().BoolVar(&scoreDetailed, "detailed", false, "Include extraction detail in the output")
	_ = scoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreJob == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if scoreJob != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadConfig(scoreConfig)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resumeText, err := extract.FromFile(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobText, err := loadJobText(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("job posting is empty")
	}

	scorer, err := buildScorer(cfg, log)
	if err != nil {
		return err
	}

	if scoreDetailed {
		analysis := scorer.Analyze(ctx, resumeText, jobText)
		if scoreJSON {
			return printJSON(analysis)
		}
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysisResult(analysis.ATSScore)
		printer.PrintDetailedAnalysis(&analysis.DetailedAnalysis)
		return nil
	}

	result := scorer.Calculate(ctx, resumeText, jobText)
	if scoreJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintAnalysisResult(result)
	return nil
}

func loadJobText(ctx context.Context) (string, error) {
	if scoreJob != "" {
		data, err := os.ReadFile(scoreJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.URL(ctx, scoreJobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return result.Text, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
