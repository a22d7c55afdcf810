package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/ats"
	"github.com/hirelens/hirelens/internal/db"
	"github.com/hirelens/hirelens/internal/extraction"
	"github.com/hirelens/hirelens/internal/ingestion"
	"github.com/hirelens/hirelens/internal/lexicon"
	"github.com/hirelens/hirelens/internal/matching"
	"github.com/hirelens/hirelens/internal/ner"
	"github.com/hirelens/hirelens/internal/observability"
	"github.com/hirelens/hirelens/internal/parsing"
	"github.com/hirelens/hirelens/internal/ranking"
	"github.com/hirelens/hirelens/internal/types"
)

var (
	rankResume      string
	rankJob         string
	rankJobURL      string
	rankCandidateID string
	rankJobID       string
	rankLexicon     string
	rankBrowser     bool
	rankSave        bool
	rankJSON        bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Compute a weighted suitability ranking for a candidate against a job",
	Long: `Rank combines skill match, experience, role confidence, and ATS quality
into a single weighted score with a suitability label. With --save and
DATABASE_URL set, the result is persisted and overwrites any previous ranking
for the same candidate/job pair.`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankResume, "resume", "", "Path to resume file")
	rankCmd.Flags().StringVar(&rankJob, "job", "", "Path to job description file")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL of a job posting to fetch")
	rankCmd.Flags().StringVar(&rankCandidateID, "candidate-id", "", "Identifier for the candidate (required)")
	rankCmd.Flags().StringVar(&rankJobID, "job-id", "", "Identifier for the job (required)")
	rankCmd.Flags().StringVar(&rankLexicon, "lexicon", "", "Path to a custom skill lexicon JSON file")
	rankCmd.Flags().BoolVar(&rankBrowser, "browser", false, "Render the job posting in a headless browser when static fetch is insufficient")
	rankCmd.Flags().BoolVar(&rankSave, "save", false, "Persist the ranking to the database (requires DATABASE_URL)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the result as JSON")
	_ = rankCmd.MarkFlagRequired("candidate-id")
	_ = rankCmd.MarkFlagRequired("job-id")
	rankCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	resumePath := rankResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("a resume is required: pass --resume or set \"resume\" in the config file")
	}

	jobPath, jobURL := rankJob, rankJobURL
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
		jobText, err = ingestion.FromURL(ctx, jobURL, rankBrowser || cfg.UseBrowser)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	} else {
		jobText, err = ingestion.ReadDocument(jobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	lexiconPath := rankLexicon
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath
	}
	lex, err := lexicon.LoadFile(lexiconPath)
	if err != nil {
		return err
	}

	var entities *types.LabeledEntities
	roleName := ""
	roleConfidence := 0.0
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
		if label, err := recognizer.ClassifyRole(ctx, resumeText); err != nil {
			log.Printf("role classification failed, confidence defaults to 0: %v", err)
		} else {
			roleName = label.Role
			roleConfidence = label.Confidence
		}
	}

	resumeSkills := extraction.ExtractSkills(lex, resumeText, entities)
	reqs := parsing.ParseJobRequirements(lex, jobText)
	match := matching.MatchSkills(resumeSkills, reqs.RequiredSkills)
	atsReport := ats.Score(resumeText, resumeSkills, roleName)
	experienceYears := parsing.ParseExperienceYears(resumeText)

	if cfg.Verbose {
		log.Printf("matched %d of %d required skills, %d years experience against %d required",
			match.Matched.Len(), match.TotalRequired, experienceYears, reqs.RequiredExperienceYears)
	}

	outcome := ranking.Compute(
		match.MatchPercentage,
		float64(experienceYears),
		float64(reqs.RequiredExperienceYears),
		roleConfidence,
		float64(atsReport.Score),
	)

	result := types.RankingResult{
		CandidateID:   rankCandidateID,
		JobID:         rankJobID,
		TotalScore:    outcome.TotalScore,
		Label:         outcome.Label,
		Components:    outcome.Components,
		MissingSkills: match.Missing.Sorted(),
		CreatedAt:     time.Now().UTC(),
	}

	if rankSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires DATABASE_URL or \"database_url\" in the config file")
		}
		conn, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()
		if err := conn.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		if err := conn.UpsertRanking(ctx, &result); err != nil {
			return fmt.Errorf("failed to save ranking: %w", err)
		}
		log.Printf("Saved ranking for candidate %s against job %s", rankCandidateID, rankJobID)
	}

	if rankJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintRanking(&result)
	return nil
}
