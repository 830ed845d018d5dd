package usecase

import (
	"context"
	"errors"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidAIProvider = errors.New("invalid ai provider")

// PublicSettings is what the storefront needs: identity, contact data and the
// messaging handoff links.
type PublicSettings struct {
	Settings entities.StoreSettings
	Links    entities.ContactLinks
}

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.StoreSettings, error)
	Replace(ctx context.Context, s entities.StoreSettings) (entities.StoreSettings, error)
	Public(ctx context.Context) (PublicSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.StoreSettings, error) {
	return u.repo.Get(ctx)
}

// Replace stores the whole settings document. An empty provider keeps gemini.
func (u *SettingsUseCase) Replace(ctx context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	if s.AIProvider == "" {
		s.AIProvider = entities.AIProviderGemini
	}
	if !s.AIProvider.IsValid() {
		return entities.StoreSettings{}, ErrInvalidAIProvider
	}
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		log.Printf("[settings][usecase] save failed err=%v", err)
		return entities.StoreSettings{}, err
	}
	log.Printf("[settings][usecase] settings saved ai_provider=%s", saved.AIProvider)
	return saved, nil
}

func (u *SettingsUseCase) Public(ctx context.Context) (PublicSettings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return PublicSettings{}, err
	}
	return PublicSettings{Settings: s, Links: s.ContactLinks()}, nil
}
