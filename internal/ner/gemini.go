package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hirelens/hirelens/internal/types"
)

// DefaultModel is the Gemini model used for recognition when none is
// configured.
const DefaultModel = "gemini-2.0-flash"

const entityPrompt = `Extract labeled entities from the resume text below.
Return JSON with exactly these keys:
  "skills": array of technical skill strings,
  "experience": array of experience phrases (e.g. "5 years of experience"),
  "designations": array of job titles held.
Return only entities literally present in the text. No commentary.

Resume:
%s`

const rolePrompt = `Classify the most likely job role for the resume below.
Return JSON with exactly these keys:
  "predicted_role": string,
  "confidence": number between 0 and 1.
No commentary.

Resume:
%s`

// GeminiRecognizer implements EntityRecognizer and RoleClassifier on top of
// the Gemini API.
type GeminiRecognizer struct {
	client *genai.Client
	model  string
}

// NewGeminiRecognizer creates a recognizer backed by Gemini.
func NewGeminiRecognizer(ctx context.Context, apiKey, model string) (*GeminiRecognizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecognizer{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (r *GeminiRecognizer) Close() error {
	return r.client.Close()
}

// RecognizeEntities extracts labeled skill/experience/designation entities.
func (r *GeminiRecognizer) RecognizeEntities(ctx context.Context, text string) (*types.LabeledEntities, error) {
	raw, err := r.generateJSON(ctx, fmt.Sprintf(entityPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}

	var entities types.LabeledEntities
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}
	return &entities, nil
}

// ClassifyRole predicts the role label for a resume.
func (r *GeminiRecognizer) ClassifyRole(ctx context.Context, text string) (types.RoleLabel, error) {
	raw, err := r.generateJSON(ctx, fmt.Sprintf(rolePrompt, text))
	if err != nil {
		return types.RoleLabel{}, fmt.Errorf("role classification failed: %w", err)
	}

	var label types.RoleLabel
	if err := json.Unmarshal([]byte(raw), &label); err != nil {
		return types.RoleLabel{}, fmt.Errorf("failed to parse role response: %w", err)
	}
	if label.Confidence < 0 {
		label.Confidence = 0
	}
	if label.Confidence > 1 {
		label.Confidence = 1
	}
	return label, nil
}

func (r *GeminiRecognizer) generateJSON(ctx context.Context, prompt string) (string, error) {
	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// CleanJSONBlock removes markdown code block wrappers some models emit
// around JSON payloads.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
