package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-content-engine/internal/quality"
	"github.com/jonathan/seo-content-engine/internal/types"
)

var (
	scoreIn    string
	scoreWords int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Re-run the quality validator over a saved article output",
	Long:  `Load an article output JSON file (as produced by the generate command) and print a fresh quality report.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreIn, "in", "", "Path to an article output JSON file (required)")
	scoreCmd.Flags().IntVar(&scoreWords, "words", 0, "Target word count to score against (defaults to the article's own word count)")
	_ = scoreCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var output types.ArticleOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse article output: %w", err)
	}

	target := scoreWords
	if target == 0 {
		target = output.Article.WordCount
	}

	report := quality.Validate(output.Article, output.SEOMetadata, target)

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	fmt.Println(string(reportJSON))
	if !report.Passed {
		fmt.Fprintf(os.Stderr, "Quality check did not pass (%d/%d)\n", report.Score, report.MaxScore)
	}
	return nil
}
