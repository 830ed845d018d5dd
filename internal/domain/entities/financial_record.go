package entities

type FinancialRecordType string

const (
	FinancialRecordInflow  FinancialRecordType = "inflow"
	FinancialRecordOutflow FinancialRecordType = "outflow"
)

func (t FinancialRecordType) IsValid() bool {
	return t == FinancialRecordInflow || t == FinancialRecordOutflow
}

// FinancialRecord is a ledger entry. Amount is always positive; Type gives the sign.
type FinancialRecord struct {
	ID          string              `json:"id"`
	Type        FinancialRecordType `json:"type"`
	Category    string              `json:"category"`
	Amount      float64             `json:"amount"`
	Date        string              `json:"date"`
	Description string              `json:"description"`
}
