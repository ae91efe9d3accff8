// Package main provides the entry point for the SEO content engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seo_agent",
	Short: "SEO Content Engine",
	Long:  "SEO Content Engine generates complete, SEO-optimized articles from a topic by analyzing search results, planning an outline, writing the content, and validating it against SEO best practices.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
