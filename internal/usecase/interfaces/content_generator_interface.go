package interfaces

import "context"

// GeneratedPost is the structured answer expected from the text generation model.
type GeneratedPost struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

// IContentGenerator writes a blog post draft about a topic with a generative model.
type IContentGenerator interface {
	GeneratePost(ctx context.Context, topic string) (GeneratedPost, error)
}
