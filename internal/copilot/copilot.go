// Package copilot provides the interview practice chat assistant, proxied to
// an LLM provider.
package copilot

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hirelens/hirelens/internal/types"
)

// DefaultModel is the Gemini model used for chat when none is configured.
const DefaultModel = "gemini-2.0-flash"

const systemPrompt = "You are a helpful Interview Copilot. You help candidates practice technical interviews."

// Copilot wraps an LLM chat session for interview practice.
type Copilot struct {
	client *genai.Client
	model  string
}

// New creates a copilot backed by Gemini.
func New(ctx context.Context, apiKey, model string) (*Copilot, error) {
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

	return &Copilot{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (c *Copilot) Close() error {
	return c.client.Close()
}

// Reply answers one chat turn, replaying prior history into the session.
// When the request carries context (e.g. a job description or gap report),
// it is prepended to the user message.
func (c *Copilot) Reply(ctx context.Context, req *types.ChatRequest) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	session := model.StartChat()
	session.History = make([]*genai.Content, 0, len(req.History))
	for _, msg := range req.History {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	message := req.Message
	if req.Context != "" {
		message = fmt.Sprintf("Context:\n%s\n\nUser Question:\n%s", req.Context, req.Message)
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
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
