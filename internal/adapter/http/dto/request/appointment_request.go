package request

import "arton_garage/internal/usecase"

type AppointmentRequest struct {
	LeadID    string `json:"lead_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

func (r AppointmentRequest) ToDraft() usecase.AppointmentDraft {
	return usecase.AppointmentDraft{
		LeadID:    r.LeadID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Time:      r.Time,
		Notes:     r.Notes,
	}
}

// QuickAppointmentRequest books a clicked cell of the current week grid.
type QuickAppointmentRequest struct {
	Day       string `json:"day" binding:"required"`
	Time      string `json:"time" binding:"required"`
	LeadID    string `json:"lead_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Notes     string `json:"notes"`
}

// Complete fills the booking parts the grid cell does not know.
func (r QuickAppointmentRequest) Complete(d usecase.AppointmentDraft) usecase.AppointmentDraft {
	d.LeadID = r.LeadID
	d.ServiceID = r.ServiceID
	d.Notes = r.Notes
	return d
}
