package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// WorkOrderPayment records a checkout of a work order through the payment provider.
//
// ID is the provider payment id. ProviderPayloadRaw keeps the provider response
// body as-is for reconciliation.
type WorkOrderPayment struct {
	ID                 string          `json:"id"`
	WorkOrderID        string          `json:"work_order_id"`
	Amount             float64         `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             PaymentStatus   `json:"status"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
