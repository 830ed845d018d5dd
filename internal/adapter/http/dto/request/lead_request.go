package request

import (
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"
)

// LeadRequest is shared by the contact, test drive and product interest forms.
type LeadRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Vehicle  string `json:"vehicle"`
	Interest string `json:"interest"`
}

func (r LeadRequest) ToDraft() usecase.LeadDraft {
	return usecase.LeadDraft{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Vehicle:  r.Vehicle,
		Interest: r.Interest,
	}
}

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r LeadStatusRequest) ResolveStatus() entities.LeadStatus {
	return entities.LeadStatus(strings.TrimSpace(r.Status))
}
