package entities

import "time"

type LeadStatus string

const (
	LeadStatusNovo      LeadStatus = "Novo"
	LeadStatusContacto  LeadStatus = "Em contacto"
	LeadStatusOrcamento LeadStatus = "Orçamento enviado"
	LeadStatusFechado   LeadStatus = "Fechado"
	LeadStatusPerdido   LeadStatus = "Perdido"
)

var LeadStatuses = []LeadStatus{
	LeadStatusNovo,
	LeadStatusContacto,
	LeadStatusOrcamento,
	LeadStatusFechado,
	LeadStatusPerdido,
}

func (s LeadStatus) IsValid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Lead is a prospective customer captured by a public form (contact, test drive,
// product interest).
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Vehicle   string     `json:"vehicle"`
	Interest  string     `json:"interest"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
