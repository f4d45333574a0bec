package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// classifierPromptLimit bounds how much document text goes to the model.
const classifierPromptLimit = 4000

// Classification is the LLM's read of a source document: topical tags
// plus a raw [0,1] complexity score.
type Classification struct {
	Tags            []string `json:"tags"`
	ComplexityScore float64  `json:"complexity"`
}

// ClassifierService tags documents and scores their complexity through
// a Groq-hosted chat model.
type ClassifierService struct {
	client *openai.Client
	model  string
}

func NewClassifierService() (*ClassifierService, error) {
	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = "https://api.groq.com/openai/v1"

	model := strings.TrimSpace(os.Getenv("GROQ_MODEL"))
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}

	return &ClassifierService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// ClassifyDocument asks the model for tags and a complexity score.
// Callers fall back to EstimateComplexity and no tags on error.
func (s *ClassifierService) ClassifyDocument(ctx context.Context, text string) (Classification, error) {
	if len(text) > classifierPromptLimit {
		text = text[:classifierPromptLimit]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: `You label source documents for a translation marketplace. Reply with JSON only, no prose: {"tags": ["..."], "complexity": 0.0} where tags are up to 5 lowercase topic labels (e.g. "legal", "medical", "technical", "marketing") and complexity is a number between 0 and 1 estimating how hard the document is to translate.`,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("groq API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Classification{}, fmt.Errorf("no response from Groq")
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

func parseClassification(raw string) (Classification, error) {
	// Models sometimes wrap JSON in a code fence.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var c Classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Classification{}, fmt.Errorf("invalid classifier JSON: %w; body: %s", err, raw)
	}

	c.ComplexityScore = clamp01(c.ComplexityScore)
	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	c.Tags = tags
	return c, nil
}
