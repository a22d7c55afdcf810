package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/ats"
	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/ingestion"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/ner"
	"github.com/hirelens/hirelens/internal/observability"
	"github.com/hirelens/hirelens/internal/types"
)

var (
	analyzeResume  string
	analyzeLexicon string
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract skills from a resume and compute its ATS score",
	Long:  `Analyze reads a resume (.txt, .pdf, or .docx), extracts its skill set using the lexicon and, when GEMINI_API_KEY is set, the entity recognizer, then scores the resume against the ATS rubric.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Path to a custom skill lexicon JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	resumePath := analyzeResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("a resume is required: pass --resume or set \"resume\" in the config file")
	}

	text, err := ingestion.ReadDocument(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	lexiconPath := analyzeLexicon
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath
	}
	lex, err := lexicon.LoadFile(lexiconPath)
	if err != nil {
		return err
	}

	var entities *types.LabeledEntities
	roleName := ""
	if cfg.APIKey != "" {
		recognizer, err := ner.NewGeminiRecognizer(ctx, cfg.APIKey, "")
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		defer func() { _ = recognizer.Close() }()

		if recognized, err := recognizer.RecognizeEntities(ctx, text); err != nil {
			log.Printf("entity recognition failed, using lexicon only: %v", err)
		} else {
			entities = recognized
		}
		if label, err := recognizer.ClassifyRole(ctx, text); err != nil {
			log.Printf("role classification failed: %v", err)
		} else {
			roleName = label.Role
			fmt.Printf("Predicted role: %s (confidence %.2f)\n", label.Role, label.Confidence)
		}
	}

	skills := extraction.ExtractSkills(lex, text, entities)
	report := ats.Score(text, skills, roleName)

	if analyzeJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"skills": skills,
			"ats":    report,
		})
	}

	fmt.Printf("Skills detected (%d): %v\n", skills.Len(), skills.Sorted())
	observability.NewPrinter(os.Stdout).PrintATSReport(&report)
	return nil
}
