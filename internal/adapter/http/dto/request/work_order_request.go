package request

import (
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"
)

type WorkOrderItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type"`
}

func (r WorkOrderItemRequest) ToDraft() usecase.WorkOrderItemDraft {
	return usecase.WorkOrderItemDraft{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Type:        entities.WorkOrderItemType(strings.TrimSpace(r.Type)),
	}
}

type ChecklistRequest struct {
	Lights    bool   `json:"lights"`
	Bodywork  bool   `json:"bodywork"`
	Tires     bool   `json:"tires"`
	OilLevel  bool   `json:"oil_level"`
	FuelLevel string `json:"fuel_level"`
	Scratches string `json:"scratches"`
}

// WorkOrderRequest is the workshop intake form. id and tracking_code are
// optional; the server generates them when absent.
type WorkOrderRequest struct {
	ID           string                 `json:"id"`
	TrackingCode string                 `json:"tracking_code"`
	ClientName   string                 `json:"client_name" binding:"required"`
	ClientPhone  string                 `json:"client_phone"`
	ClientEmail  string                 `json:"client_email"`
	Vehicle      string                 `json:"vehicle" binding:"required"`
	Plate        string                 `json:"plate" binding:"required"`
	Km           int                    `json:"km"`
	Status       string                 `json:"status"`
	Items        []WorkOrderItemRequest `json:"items" binding:"dive"`
	Checklist    *ChecklistRequest      `json:"checklist"`
	Technician   string                 `json:"technician"`
	StartDate    string                 `json:"start_date"`
	Notes        string                 `json:"notes"`
}

func (r WorkOrderRequest) ToDraft() usecase.WorkOrderDraft {
	d := usecase.WorkOrderDraft{
		ID:           r.ID,
		TrackingCode: r.TrackingCode,
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		ClientEmail:  r.ClientEmail,
		Vehicle:      r.Vehicle,
		Plate:        r.Plate,
		Km:           r.Km,
		Status:       entities.WorkOrderStatus(strings.TrimSpace(r.Status)),
		Technician:   r.Technician,
		StartDate:    r.StartDate,
		Notes:        r.Notes,
	}
	for _, it := range r.Items {
		d.Items = append(d.Items, it.ToDraft())
	}
	if r.Checklist != nil {
		d.Checklist = &entities.WorkOrderChecklist{
			Lights:    r.Checklist.Lights,
			Bodywork:  r.Checklist.Bodywork,
			Tires:     r.Checklist.Tires,
			OilLevel:  r.Checklist.OilLevel,
			FuelLevel: r.Checklist.FuelLevel,
			Scratches: r.Checklist.Scratches,
		}
	}
	return d
}

type WorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r WorkOrderStatusRequest) ResolveStatus() entities.WorkOrderStatus {
	return entities.WorkOrderStatus(strings.TrimSpace(r.Status))
}
