package request

import "arton_garage/internal/usecase"

type BlogPostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content" binding:"required"`
	Image    string   `json:"image"`
	Author   string   `json:"author"`
	Keywords []string `json:"keywords"`
}

func (r BlogPostRequest) ToDraft() usecase.BlogPostDraft {
	return usecase.BlogPostDraft{
		Title:    r.Title,
		Slug:     r.Slug,
		Content:  r.Content,
		Image:    r.Image,
		Author:   r.Author,
		Keywords: r.Keywords,
	}
}

// TopicRequest feeds both the generation queue and the generate action.
type TopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}
