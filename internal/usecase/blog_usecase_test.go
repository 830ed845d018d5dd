package usecase

import (
	"context"
	"errors"
	"testing"

	"arton_garage/internal/adapter/persistence/memory"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"
	mock_interfaces "arton_garage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func geminiSettings() *memory.SettingsRepository {
	repo := memory.NewSettingsRepository()
	_, _ = repo.Save(context.Background(), entities.StoreSettings{Name: "Arton", AIProvider: entities.AIProviderGemini})
	return repo
}

func TestBlogUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), nil, fixedClock(may27))

	p, err := uc.Create(ctx, BlogPostDraft{Title: "Revisão Técnica", Content: "..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Slug != "revisao-tecnica" || p.Author != DefaultPostAuthor || p.Date != "2024-05-27" || p.Keywords == nil {
		t.Fatalf("unexpected post %+v", p)
	}

	got, err := uc.GetBySlug(ctx, "revisao-tecnica")
	if err != nil || got.ID != p.ID {
		t.Fatalf("expected %s, got %+v err=%v", p.ID, got, err)
	}
	if _, err := uc.GetBySlug(ctx, "nope"); !errors.Is(err, ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}
	if _, err := uc.Create(ctx, BlogPostDraft{Title: "Só título"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if err := uc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, p.ID); !errors.Is(err, ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}
}

func TestBlogUseCase_Queue(t *testing.T) {
	uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), nil, nil)

	if _, err := uc.EnqueueTopic(context.Background(), "   "); !errors.Is(err, ErrInvalidTopic) {
		t.Fatalf("expected ErrInvalidTopic, got %v", err)
	}
	_, _ = uc.EnqueueTopic(context.Background(), "Jantes aro 20")
	q, _ := uc.EnqueueTopic(context.Background(), "Pneus de pista")
	if len(q) != 2 || q[0] != "Jantes aro 20" {
		t.Fatalf("unexpected queue %v", q)
	}
	q[0] = "mutated"
	if uc.Queue(context.Background())[0] != "Jantes aro 20" {
		t.Fatalf("queue must not be shared with callers")
	}

	q, _ = uc.EnqueueTopic(context.Background(), "  Travões cerâmicos \t")
	if q[2] != "Travões cerâmicos" {
		t.Fatalf("expected trimmed topic, got %q", q[2])
	}
}

func TestBlogUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success prepends post and dequeues topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIContentGenerator(ctrl)
		posts := memory.NewBlogPostRepository()
		uc := NewBlogUseCase(posts, geminiSettings(), gen, fixedClock(may27))
		_, _ = uc.EnqueueTopic(ctx, "Jantes aro 20")

		gen.EXPECT().GeneratePost(gomock.Any(), "Jantes aro 20").Return(interfaces.GeneratedPost{
			Title:    "Vantagens das Jantes Aro 20",
			Content:  "## Porquê",
			Keywords: []string{"jantes"},
		}, nil)

		p, err := uc.Generate(ctx, "Jantes aro 20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Slug != "vantagens-das-jantes-aro-20" || p.Author != GeneratedPostAuthor || p.Image != GeneratedPostImage {
			t.Fatalf("unexpected post %+v", p)
		}
		if len(uc.Queue(ctx)) != 0 {
			t.Fatalf("expected empty queue, got %v", uc.Queue(ctx))
		}
	})

	t.Run("padded topic matches its queue entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIContentGenerator(ctrl)
		uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), gen, fixedClock(may27))
		_, _ = uc.EnqueueTopic(ctx, " Pneus de pista ")

		gen.EXPECT().GeneratePost(gomock.Any(), "Pneus de pista").Return(interfaces.GeneratedPost{Title: "Pneus de Pista"}, nil)

		if _, err := uc.Generate(ctx, "Pneus de pista  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q := uc.Queue(ctx); len(q) != 0 {
			t.Fatalf("expected empty queue, got %v", q)
		}
	})

	t.Run("empty answer falls back to topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIContentGenerator(ctrl)
		uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), gen, nil)

		gen.EXPECT().GeneratePost(gomock.Any(), gomock.Any()).Return(interfaces.GeneratedPost{}, nil)

		p, err := uc.Generate(ctx, "Pneus de pista")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Pneus de pista" || p.Content != GeneratedPostContent || len(p.Keywords) != 1 || p.Keywords[0] != "Pneus de pista" {
			t.Fatalf("unexpected fallbacks %+v", p)
		}
	})

	t.Run("failure keeps topic queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIContentGenerator(ctrl)
		uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), gen, nil)
		_, _ = uc.EnqueueTopic(ctx, "Suspensão")

		gen.EXPECT().GeneratePost(gomock.Any(), gomock.Any()).Return(interfaces.GeneratedPost{}, errors.New("quota"))

		if _, err := uc.Generate(ctx, "Suspensão"); !errors.Is(err, ErrContentGenerationFailed) {
			t.Fatalf("expected ErrContentGenerationFailed, got %v", err)
		}
		if len(uc.Queue(ctx)) != 1 {
			t.Fatalf("expected topic to stay queued")
		}
	})

	t.Run("gpt is not supported", func(t *testing.T) {
		settings := memory.NewSettingsRepository()
		_, _ = settings.Save(ctx, entities.StoreSettings{Name: "Arton", AIProvider: entities.AIProviderGPT})
		uc := NewBlogUseCase(memory.NewBlogPostRepository(), settings, nil, nil)
		if _, err := uc.Generate(ctx, "x"); !errors.Is(err, ErrAIProviderNotSupported) {
			t.Fatalf("expected ErrAIProviderNotSupported, got %v", err)
		}
	})

	t.Run("generator missing", func(t *testing.T) {
		uc := NewBlogUseCase(memory.NewBlogPostRepository(), geminiSettings(), nil, nil)
		if _, err := uc.Generate(ctx, "x"); !errors.Is(err, ErrContentGeneratorNotConfigured) {
			t.Fatalf("expected ErrContentGeneratorNotConfigured, got %v", err)
		}
	})
}
