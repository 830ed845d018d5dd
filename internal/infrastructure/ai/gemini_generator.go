// Package ai writes blog drafts with Google's Gemini models.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"arton_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("gemini api key is required")
	ErrEmptyResponse = errors.New("gemini returned an empty response")
)

const postPrompt = `Escreva um post de blog premium para uma garagem de rodas e performance sobre: %s.
Retorne em formato JSON: { "title": "string", "content": "string em markdown", "keywords": ["string"] }`

// contentModel is the part of genai.Models the generator calls.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiGenerator struct {
	models contentModel
	model  string
}

var _ interfaces.IContentGenerator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	log.Printf("[blog][ai] gemini client initialized model=%s", model)
	return &GeminiGenerator{models: client.Models, model: model}, nil
}

// GeneratePost makes a single JSON-mode request; errors are returned as-is
// without retry.
func (g *GeminiGenerator) GeneratePost(ctx context.Context, topic string) (interfaces.GeneratedPost, error) {
	resp, err := g.models.GenerateContent(ctx, g.model,
		genai.Text(fmt.Sprintf(postPrompt, topic)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return interfaces.GeneratedPost{}, err
	}
	return parseGeneratedPost(resp.Text())
}

// parseGeneratedPost tolerates a markdown code fence around the JSON body.
func parseGeneratedPost(text string) (interfaces.GeneratedPost, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return interfaces.GeneratedPost{}, ErrEmptyResponse
	}
	var post interfaces.GeneratedPost
	if err := json.Unmarshal([]byte(text), &post); err != nil {
		return interfaces.GeneratedPost{}, fmt.Errorf("decode gemini response: %w", err)
	}
	return post, nil
}
