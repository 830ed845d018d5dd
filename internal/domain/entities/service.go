package entities

// Service is a workshop service offered on the public services page.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}
