package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrBlogPostNotFound              = errors.New("blog post not found")
	ErrInvalidBlogPostID             = errors.New("invalid blog post id")
	ErrInvalidTopic                  = errors.New("invalid topic")
	ErrAIProviderNotSupported        = errors.New("ai provider not supported")
	ErrContentGeneratorNotConfigured = errors.New("content generator not configured")
	ErrContentGenerationFailed       = errors.New("content generation failed")
)

const (
	GeneratedPostImage   = "https://images.unsplash.com/photo-1614200187524-dc4b892acf16?auto=format&fit=crop&q=80&w=1200"
	GeneratedPostAuthor  = "Arton AI"
	GeneratedPostContent = "Conteúdo gerado..."
	DefaultPostAuthor    = "Equipa Arton"
)

type BlogPostDraft struct {
	Title    string `validate:"required"`
	Slug     string
	Content  string `validate:"required"`
	Image    string `validate:"omitempty,url"`
	Author   string
	Keywords []string
}

type IBlogUseCase interface {
	List(ctx context.Context) ([]entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error)
	Create(ctx context.Context, draft BlogPostDraft) (entities.BlogPost, error)
	Delete(ctx context.Context, id string) error
	EnqueueTopic(ctx context.Context, topic string) ([]string, error)
	Queue(ctx context.Context) []string
	Generate(ctx context.Context, topic string) (entities.BlogPost, error)
}

// BlogUseCase manages blog posts and AI-assisted authoring.
//
// The topic queue lives in process memory, like the rest of the back-office
// state. A topic leaves the queue only when its post was generated.
type BlogUseCase struct {
	repo      interfaces.IBlogPostRepository
	settings  interfaces.ISettingsRepository
	generator interfaces.IContentGenerator
	now       Clock

	mu    sync.Mutex
	queue []string
}

var _ IBlogUseCase = (*BlogUseCase)(nil)

func NewBlogUseCase(repo interfaces.IBlogPostRepository, settings interfaces.ISettingsRepository, generator interfaces.IContentGenerator, now Clock) *BlogUseCase {
	return &BlogUseCase{repo: repo, settings: settings, generator: generator, now: orSystemClock(now)}
}

func (u *BlogUseCase) List(ctx context.Context) ([]entities.BlogPost, error) {
	return u.repo.List(ctx)
}

func (u *BlogUseCase) GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.BlogPost{}, ErrBlogPostNotFound
	}
	p, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.BlogPost{}, err
	}
	if p.ID == "" {
		return entities.BlogPost{}, ErrBlogPostNotFound
	}
	return p, nil
}

func (u *BlogUseCase) Create(ctx context.Context, draft BlogPostDraft) (entities.BlogPost, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Content = strings.TrimSpace(draft.Content)
	draft.Image = strings.TrimSpace(draft.Image)
	if err := validateDraft(draft); err != nil {
		return entities.BlogPost{}, err
	}
	post := entities.BlogPost{
		ID:       uuid.NewString(),
		Title:    draft.Title,
		Slug:     firstNonEmpty(draft.Slug, entities.Slugify(draft.Title)),
		Content:  draft.Content,
		Image:    firstNonEmpty(draft.Image, GeneratedPostImage),
		Author:   firstNonEmpty(draft.Author, DefaultPostAuthor),
		Date:     u.now().Format(dateLayout),
		Keywords: draft.Keywords,
	}
	if post.Keywords == nil {
		post.Keywords = []string{}
	}
	return u.repo.Create(ctx, post)
}

func (u *BlogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBlogPostID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrBlogPostNotFound
	}
	return nil
}

// EnqueueTopic appends the trimmed topic to the generation queue and returns the queue.
func (u *BlogUseCase) EnqueueTopic(_ context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.queue = append(u.queue, topic)
	return append([]string(nil), u.queue...), nil
}

func (u *BlogUseCase) Queue(_ context.Context) []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string{}, u.queue...)
}

// Generate asks the configured AI provider for a post about topic and prepends it.
//
// Only the gemini provider is wired; gpt reports ErrAIProviderNotSupported.
// There is no retry: a failed call is reported once and the topic stays queued.
func (u *BlogUseCase) Generate(ctx context.Context, topic string) (entities.BlogPost, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return entities.BlogPost{}, ErrInvalidTopic
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.BlogPost{}, err
	}
	if settings.AIProvider != entities.AIProviderGemini {
		log.Printf("[blog][usecase] provider not supported provider=%q", settings.AIProvider)
		return entities.BlogPost{}, ErrAIProviderNotSupported
	}
	if u.generator == nil {
		return entities.BlogPost{}, ErrContentGeneratorNotConfigured
	}

	log.Printf("[blog][usecase] generate start topic=%q", topic)
	data, err := u.generator.GeneratePost(ctx, topic)
	if err != nil {
		log.Printf("[blog][usecase] generate failed topic=%q err=%v", topic, err)
		return entities.BlogPost{}, fmt.Errorf("%w: %v", ErrContentGenerationFailed, err)
	}

	title := firstNonEmpty(data.Title, topic)
	keywords := data.Keywords
	if len(keywords) == 0 {
		keywords = []string{topic}
	}
	post := entities.BlogPost{
		ID:       uuid.NewString(),
		Title:    title,
		Slug:     entities.Slugify(title),
		Content:  firstNonEmpty(data.Content, GeneratedPostContent),
		Image:    GeneratedPostImage,
		Author:   GeneratedPostAuthor,
		Date:     u.now().Format(dateLayout),
		Keywords: keywords,
	}
	created, err := u.repo.Create(ctx, post)
	if err != nil {
		return entities.BlogPost{}, err
	}

	u.dequeue(topic)
	log.Printf("[blog][usecase] generate success post_id=%s slug=%s", created.ID, created.Slug)
	return created, nil
}

func (u *BlogUseCase) dequeue(topic string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	kept := u.queue[:0]
	for _, t := range u.queue {
		if t != topic {
			kept = append(kept, t)
		}
	}
	u.queue = kept
}
