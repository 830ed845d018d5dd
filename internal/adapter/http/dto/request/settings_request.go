package request

import (
	"strings"

	"arton_garage/internal/domain/entities"
)

type SettingsRequest struct {
	Name         string `json:"name" binding:"required"`
	CNPJ         string `json:"cnpj"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	Logo         string `json:"logo"`
	Icon         string `json:"icon"`
	AIProvider   string `json:"ai_provider"`
	HeroVideoURL string `json:"hero_video_url"`
}

func (r SettingsRequest) ToSettings() entities.StoreSettings {
	return entities.StoreSettings{
		Name:         r.Name,
		CNPJ:         r.CNPJ,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Logo:         r.Logo,
		Icon:         r.Icon,
		AIProvider:   entities.AIProvider(strings.ToLower(strings.TrimSpace(r.AIProvider))),
		HeroVideoURL: r.HeroVideoURL,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
