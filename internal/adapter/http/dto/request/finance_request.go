package request

import (
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"
)

type FinancialRecordRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date"`
	Description string  `json:"description" binding:"required"`
}

func (r FinancialRecordRequest) ToDraft() usecase.FinancialRecordDraft {
	return usecase.FinancialRecordDraft{
		Type:        entities.FinancialRecordType(strings.ToLower(strings.TrimSpace(r.Type))),
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}
