package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/server"
)

var (
	servePort    int
	serveLexicon string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HireLens HTTP API server",
	Long: `Serve starts the REST API exposing resume analysis, skill-gap matching,
ATS scoring, candidate ranking, and the interview chat copilot.

Requires DATABASE_URL for ranking and chat persistence. When GEMINI_API_KEY
is set, entity recognition, role classification, and the chat copilot are
enabled; otherwise those endpoints degrade or return 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLexicon, "lexicon", "", "Path to a custom skill lexicon JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database is required: set DATABASE_URL or \"database_url\" in the config file")
	}

	port := servePort
	if !cmd.Flags().Changed("port") && cfg.Port != 0 {
		port = cfg.Port
	}

	lexiconPath := serveLexicon
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath
	}

	srv, err := server.New(cmd.Context(), server.Config{
		Port:        port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		LexiconPath: lexiconPath,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return srv.Start()
}
