package ner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_StripsJSONFence(t *testing.T) {
	input := "```json\n{\"skills\": [\"Go\"]}\n```"

	assert.Equal(t, `{"skills": ["Go"]}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_StripsBareFence(t *testing.T) {
	input := "```\n{\"confidence\": 0.9}\n```"

	assert.Equal(t, `{"confidence": 0.9}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_PassesThroughPlainJSON(t *testing.T) {
	input := `{"predicted_role": "Backend Engineer"}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_TrimsSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, "{}", CleanJSONBlock("  \n{}\n  "))
}

func TestNewGeminiRecognizer_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiRecognizer(context.Background(), "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewGeminiRecognizer_DefaultsModel(t *testing.T) {
	recognizer, err := NewGeminiRecognizer(context.Background(), "test-key", "")
	require.NoError(t, err)
	defer func() { _ = recognizer.Close() }()

	assert.Equal(t, DefaultModel, recognizer.model)
}
