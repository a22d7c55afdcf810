package lexicon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hirelens/hirelens/internal/schemas"
)

// fileSchema is the JSON Schema a custom lexicon file must conform to.
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Skill Lexicon",
  "type": "object",
  "required": ["categories"],
  "additionalProperties": false,
  "properties": {
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "patterns"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "patterns": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

// lexiconFile is the on-disk shape of a custom lexicon.
type lexiconFile struct {
	Categories []Category `json:"categories"`
}

// Load parses and compiles a lexicon from JSON content, after validating it
// against the lexicon schema.
func Load(content []byte) (*Lexicon, error) {
	if err := schemas.ValidateJSONString(fileSchema, string(content)); err != nil {
		return nil, fmt.Errorf("invalid lexicon file: %w", err)
	}

	var file lexiconFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	return New(file.Categories)
}

// LoadFile reads a custom lexicon from path. An empty path returns the
// built-in default table.
func LoadFile(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	return Load(content)
}
