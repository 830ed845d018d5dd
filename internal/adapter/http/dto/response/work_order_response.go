package response

import "arton_garage/internal/domain/entities"

type WorkOrderItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type"`
	Subtotal    float64 `json:"subtotal"`
}

// WorkOrderResponse is the back-office view of a work order. Total and
// progress are derived on every read.
type WorkOrderResponse struct {
	ID           string                      `json:"id"`
	TrackingCode string                      `json:"tracking_code"`
	ClientName   string                      `json:"client_name"`
	ClientPhone  string                      `json:"client_phone"`
	ClientEmail  string                      `json:"client_email"`
	Vehicle      string                      `json:"vehicle"`
	Plate        string                      `json:"plate"`
	Km           int                         `json:"km"`
	Status       string                      `json:"status"`
	Progress     int                         `json:"progress"`
	Items        []WorkOrderItemResponse     `json:"items"`
	Total        float64                     `json:"total"`
	Checklist    entities.WorkOrderChecklist `json:"checklist"`
	Technician   string                      `json:"technician"`
	StartDate    string                      `json:"start_date"`
	Notes        string                      `json:"notes"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           o.ID,
		TrackingCode: o.TrackingCode,
		ClientName:   o.ClientName,
		ClientPhone:  o.ClientPhone,
		ClientEmail:  o.ClientEmail,
		Vehicle:      o.Vehicle,
		Plate:        o.Plate,
		Km:           o.Km,
		Status:       string(o.Status),
		Progress:     o.Progress(),
		Items:        fromItems(o.Items),
		Total:        o.Total(),
		Checklist:    o.Checklist,
		Technician:   o.Technician,
		StartDate:    o.StartDate,
		Notes:        o.Notes,
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

// TrackingResponse is what the public tracking page shows: the vehicle, the
// job and its progress, without the client contact data.
type TrackingResponse struct {
	ID           string                      `json:"id"`
	TrackingCode string                      `json:"tracking_code"`
	Vehicle      string                      `json:"vehicle"`
	Plate        string                      `json:"plate"`
	Status       string                      `json:"status"`
	Progress     int                         `json:"progress"`
	Items        []WorkOrderItemResponse     `json:"items"`
	Total        float64                     `json:"total"`
	Checklist    entities.WorkOrderChecklist `json:"checklist"`
	Technician   string                      `json:"technician"`
	StartDate    string                      `json:"start_date"`
	Notes        string                      `json:"notes"`
}

func FromTracking(o entities.WorkOrder) TrackingResponse {
	return TrackingResponse{
		ID:           o.ID,
		TrackingCode: o.TrackingCode,
		Vehicle:      o.Vehicle,
		Plate:        o.Plate,
		Status:       string(o.Status),
		Progress:     o.Progress(),
		Items:        fromItems(o.Items),
		Total:        o.Total(),
		Checklist:    o.Checklist,
		Technician:   o.Technician,
		StartDate:    o.StartDate,
		Notes:        o.Notes,
	}
}

func fromItems(items []entities.WorkOrderItem) []WorkOrderItemResponse {
	out := make([]WorkOrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, WorkOrderItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Type:        string(it.Type),
			Subtotal:    it.Subtotal().InexactFloat64(),
		})
	}
	return out
}
