package entities

import "strings"

type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderGPT    AIProvider = "gpt"
)

func (p AIProvider) IsValid() bool {
	return p == AIProviderGemini || p == AIProviderGPT
}

// StoreSettings is the singleton shop configuration.
type StoreSettings struct {
	Name         string     `json:"name"`
	CNPJ         string     `json:"cnpj"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	Logo         string     `json:"logo"`
	Icon         string     `json:"icon"`
	AIProvider   AIProvider `json:"ai_provider"`
	HeroVideoURL string     `json:"hero_video_url,omitempty"`
}

// ContactLinks are the messaging handoff URLs built from the configured phone.
type ContactLinks struct {
	WhatsApp string `json:"whatsapp"`
	Call     string `json:"call"`
}

func (s StoreSettings) ContactLinks() ContactLinks {
	digits := phoneDigits(s.Phone)
	if digits == "" {
		return ContactLinks{}
	}
	call := "tel:" + digits
	if strings.HasPrefix(strings.TrimSpace(s.Phone), "+") {
		call = "tel:+" + digits
	}
	return ContactLinks{
		WhatsApp: "https://wa.me/" + digits,
		Call:     call,
	}
}

func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
