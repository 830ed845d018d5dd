package entities

// Appointment books a lead for a service in a weekly calendar slot.
//
// Date is YYYY-MM-DD and Time is HH:MM. A (Date, Time) pair is not unique:
// nothing prevents double-booking a slot.
type Appointment struct {
	ID        string `json:"id"`
	LeadID    string `json:"lead_id"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}
