package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/ingestion"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/ner"
	"github.com/hirelens/hirelens/internal/observability"
	"github.com/hirelens/hirelens/internal/recommend"
	"github.com/hirelens/hirelens/internal/types"
)

var (
	matchResume  string
	matchJob     string
	matchJobURL  string
	matchLexicon string
	matchBrowser bool
	matchJSON    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compare a resume against a job posting and report skill gaps",
	Long:  `Match reads a resume and a job description (from a file or a URL), extracts skills from both, and prints a gap report with matched, missing, and extra skills plus recommendations.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchResume, "resume", "", "Path to resume file")
	matchCmd.Flags().StringVar(&matchJob, "job", "", "Path to job description file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL of a job posting to fetch")
	matchCmd.Flags().StringVar(&matchLexicon, "lexicon", "", "Path to a custom skill lexicon JSON file")
	matchCmd.Flags().BoolVar(&matchBrowser, "browser", false, "Render the job posting in a headless browser when static fetch is insufficient")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the report as JSON")
	matchCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	resumePath := matchResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("a resume is required: pass --resume or set \"resume\" in the config file")
	}

	jobPath, jobURL := matchJob, matchJobURL
	if jobPath == "" && jobURL == "" {
		jobPath, jobURL = cfg.Job, cfg.JobURL
	}
	if jobPath == "" && jobURL == "" {
		return fmt.Errorf("a job source is required: pass --job or --job-url, or set one in the config file")
	}

	resumeText, err := ingestion.ReadDocument(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if jobURL != "" {
		jobText, err = ingestion.FromURL(ctx, jobURL, matchBrowser || cfg.UseBrowser)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	} else {
		jobText, err = ingestion.ReadDocument(jobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	lexiconPath := matchLexicon
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath
	}
	lex, err := lexicon.LoadFile(lexiconPath)
	if err != nil {
		return err
	}

	var entities *types.LabeledEntities
	if cfg.APIKey != "" {
		recognizer, err := ner.NewGeminiRecognizer(ctx, cfg.APIKey, "")
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		defer func() { _ = recognizer.Close() }()

		if recognized, err := recognizer.RecognizeEntities(ctx, resumeText); err != nil {
			log.Printf("entity recognition failed, using lexicon only: %v", err)
		} else {
			entities = recognized
		}
	}

	report := recommend.Report(lex, resumeText, jobText, entities)

	if cfg.Verbose {
		log.Printf("matched %d of %d required skills", report.Match.Matched.Len(), report.Match.TotalRequired)
	}

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	observability.NewPrinter(os.Stdout).PrintGapReport(&report)
	return nil
}
