// Package main provides the entry point for the hirelens resume analysis
// CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "hirelens",
	Short: "Resume and job posting analysis toolkit",
	Long:  "hirelens extracts skills from resumes and job postings, computes skill-gap reports with recommendations, scores resumes against an ATS rubric, and ranks candidates for jobs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file providing defaults for flags")
}

// loadRunConfig resolves the optional --config file and environment
// variables into a single Config. Explicit flag values take precedence in
// the commands that consume it.
func loadRunConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
