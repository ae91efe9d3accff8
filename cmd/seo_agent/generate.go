package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/pipeline"
	"github.com/jonathan/seo-content-engine/internal/serp"
	"github.com/jonathan/seo-content-engine/internal/types"
)

var (
	generateTopic string
	generateWords int
	generateLang  string
	generateMock  bool
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single article and print it as JSON",
	Long:  `Run the full generation pipeline once, without the server or database, and print the complete article output as JSON.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTopic, "topic", "", "Article topic (required)")
	generateCmd.Flags().IntVar(&generateWords, "words", 1500, "Target word count (500-5000)")
	generateCmd.Flags().StringVar(&generateLang, "lang", "en", "ISO 639-1 language code")
	generateCmd.Flags().BoolVar(&generateMock, "mock", false, "Use mock LLM and SERP providers (no API keys needed)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write the output JSON to a file instead of stdout")
	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	req := types.GenerateRequest{
		Topic:           generateTopic,
		TargetWordCount: generateWords,
		Language:        generateLang,
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return err
	}

	llmConfig := llm.DefaultConfig()
	if generateMock {
		llmConfig = &llm.Config{Provider: llm.ProviderMock}
	}
	client, err := llm.NewClient(ctx, llmConfig, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var source serp.Source
	if serpKey := os.Getenv("SERPAPI_KEY"); serpKey != "" && !generateMock {
		source = serp.NewSerpAPIClient(serpKey)
	} else {
		source = serp.NewMockSource()
	}

	orchestrator := pipeline.New(pipeline.NopStore{}, client, source)
	output, err := orchestrator.Run(ctx, uuid.New(), req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if generateOut != "" {
		if err := os.WriteFile(generateOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote article output to %s\n", generateOut)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
