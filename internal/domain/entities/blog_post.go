package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Keywords []string `json:"keywords"`
}

// Slugify lower-cases s, turns spaces into dashes and strips diacritics
// ("Revisão Técnica" -> "revisao-tecnica"). Other punctuation is kept.
func Slugify(s string) string {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "-")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
