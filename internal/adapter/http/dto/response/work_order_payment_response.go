package response

import (
	"encoding/json"
	"time"

	"arton_garage/internal/domain/entities"
)

type WorkOrderPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromWorkOrderPayment(p entities.WorkOrderPayment) WorkOrderPaymentResponse {
	res := WorkOrderPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.ProviderPayload = parsed
		}
	}
	return res
}

func FromWorkOrderPayments(payments []entities.WorkOrderPayment) []WorkOrderPaymentResponse {
	out := make([]WorkOrderPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromWorkOrderPayment(p))
	}
	return out
}
