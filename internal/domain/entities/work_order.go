package entities

import "github.com/shopspring/decimal"

// WorkOrderStatus is the workshop progress label of a work order (OS).
//
// Statuses follow the shop floor order below, but transitions are not guarded:
// an administrator may move an order to any status from any other.
type WorkOrderStatus string

const (
	WorkOrderStatusDiagnostico   WorkOrderStatus = "Diagnóstico"
	WorkOrderStatusEmReparacao   WorkOrderStatus = "Em Reparação"
	WorkOrderStatusAguardarPecas WorkOrderStatus = "Aguardar Peças"
	WorkOrderStatusFinalizado    WorkOrderStatus = "Finalizado"
	WorkOrderStatusEntregue      WorkOrderStatus = "Entregue"
)

// WorkOrderStatuses lists every status in shop floor order.
var WorkOrderStatuses = []WorkOrderStatus{
	WorkOrderStatusDiagnostico,
	WorkOrderStatusEmReparacao,
	WorkOrderStatusAguardarPecas,
	WorkOrderStatusFinalizado,
	WorkOrderStatusEntregue,
}

// ProgressPercent maps a status to the completion shown on the public tracking page.
// Unknown statuses report 0.
func (s WorkOrderStatus) ProgressPercent() int {
	switch s {
	case WorkOrderStatusDiagnostico:
		return 20
	case WorkOrderStatusEmReparacao:
		return 50
	case WorkOrderStatusAguardarPecas:
		return 65
	case WorkOrderStatusFinalizado, WorkOrderStatusEntregue:
		return 100
	default:
		return 0
	}
}

func (s WorkOrderStatus) IsValid() bool {
	for _, v := range WorkOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type WorkOrderItemType string

const (
	WorkOrderItemPeca    WorkOrderItemType = "Peça"
	WorkOrderItemServico WorkOrderItemType = "Serviço"
)

func (t WorkOrderItemType) IsValid() bool {
	return t == WorkOrderItemPeca || t == WorkOrderItemServico
}

type WorkOrderItem struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	Type        WorkOrderItemType `json:"type"`
}

func (i WorkOrderItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.UnitPrice).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// WorkOrderChecklist holds the vehicle intake inspection.
type WorkOrderChecklist struct {
	Lights    bool   `json:"lights"`
	Bodywork  bool   `json:"bodywork"`
	Tires     bool   `json:"tires"`
	OilLevel  bool   `json:"oil_level"`
	FuelLevel string `json:"fuel_level"`
	Scratches string `json:"scratches"`
}

func DefaultChecklist() WorkOrderChecklist {
	return WorkOrderChecklist{
		Lights:    true,
		Bodywork:  true,
		Tires:     true,
		OilLevel:  true,
		FuelLevel: "1/2",
		Scratches: "Nenhuma",
	}
}

// WorkOrder is a tracked repair/service job.
//
// The total is never stored: it is recomputed from Items on every read.
type WorkOrder struct {
	ID           string             `json:"id"`
	TrackingCode string             `json:"tracking_code"`
	ClientName   string             `json:"client_name"`
	ClientPhone  string             `json:"client_phone"`
	ClientEmail  string             `json:"client_email"`
	Vehicle      string             `json:"vehicle"`
	Plate        string             `json:"plate"`
	Km           int                `json:"km"`
	Status       WorkOrderStatus    `json:"status"`
	Items        []WorkOrderItem    `json:"items"`
	Checklist    WorkOrderChecklist `json:"checklist"`
	Technician   string             `json:"technician"`
	StartDate    string             `json:"start_date"`
	Notes        string             `json:"notes"`
}

// TotalDecimal is Σ quantity × unit price over the order items.
func (o WorkOrder) TotalDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o WorkOrder) Total() float64 {
	return o.TotalDecimal().InexactFloat64()
}

func (o WorkOrder) Progress() int {
	return o.Status.ProgressPercent()
}

// FindItem returns the index of the item with the given id, or -1.
func (o WorkOrder) FindItem(itemID string) int {
	for i, it := range o.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
