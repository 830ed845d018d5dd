package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"arton_garage/internal/usecase/interfaces"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

type fakeModels struct {
	text   string
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func TestGeminiGenerator_GeneratePost(t *testing.T) {
	t.Run("json response", func(t *testing.T) {
		fm := &fakeModels{text: `{"title":"Jantes Forjadas","content":"# Texto","keywords":["jantes"]}`}
		g := &GeminiGenerator{models: fm, model: "gemini-3-flash-preview"}

		got, err := g.GeneratePost(context.Background(), "jantes forjadas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := interfaces.GeneratedPost{Title: "Jantes Forjadas", Content: "# Texto", Keywords: []string{"jantes"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("post mismatch (-want +got):\n%s", diff)
		}
		if fm.model != "gemini-3-flash-preview" || fm.config.ResponseMIMEType != "application/json" {
			t.Fatalf("unexpected request model=%q config=%+v", fm.model, fm.config)
		}
		if !strings.Contains(fm.prompt, "jantes forjadas") {
			t.Fatalf("topic missing from prompt %q", fm.prompt)
		}
	})

	t.Run("fenced response", func(t *testing.T) {
		g := &GeminiGenerator{models: &fakeModels{text: "```json\n{\"title\":\"T\"}\n```"}}
		got, err := g.GeneratePost(context.Background(), "x")
		if err != nil || got.Title != "T" {
			t.Fatalf("expected title T, got %+v err=%v", got, err)
		}
	})

	t.Run("empty response", func(t *testing.T) {
		g := &GeminiGenerator{models: &fakeModels{text: "  "}}
		if _, err := g.GeneratePost(context.Background(), "x"); !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		g := &GeminiGenerator{models: &fakeModels{text: "not json"}}
		if _, err := g.GeneratePost(context.Background(), "x"); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("api error", func(t *testing.T) {
		g := &GeminiGenerator{models: &fakeModels{err: errors.New("quota")}}
		if _, err := g.GeneratePost(context.Background(), "x"); err == nil || err.Error() != "quota" {
			t.Fatalf("expected quota error, got %v", err)
		}
	})
}

func TestNewGeminiGenerator_MissingKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", "m"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
