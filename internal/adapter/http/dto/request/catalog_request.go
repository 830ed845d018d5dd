package request

import (
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"
)

type ProductSpecsRequest struct {
	Year         *int   `json:"year"`
	Mileage      *int   `json:"mileage"`
	EngineSize   string `json:"engine_size"`
	Power        string `json:"power"`
	Transmission string `json:"transmission"`
	Color        string `json:"color"`
}

type ProductRequest struct {
	Name        string               `json:"name" binding:"required"`
	Brand       string               `json:"brand" binding:"required"`
	Category    string               `json:"category"`
	Price       float64              `json:"price"`
	Image       string               `json:"image"`
	Description string               `json:"description"`
	Featured    bool                 `json:"featured"`
	Gallery     []string             `json:"gallery"`
	Specs       *ProductSpecsRequest `json:"specs"`
}

func (r ProductRequest) ToDraft() usecase.ProductDraft {
	d := usecase.ProductDraft{
		Name:        r.Name,
		Brand:       r.Brand,
		Category:    entities.ProductCategory(strings.TrimSpace(r.Category)),
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Featured:    r.Featured,
		Gallery:     r.Gallery,
	}
	if r.Specs != nil {
		d.Specs = &entities.ProductSpecs{
			Year:         r.Specs.Year,
			Mileage:      r.Specs.Mileage,
			EngineSize:   r.Specs.EngineSize,
			Power:        r.Specs.Power,
			Transmission: r.Specs.Transmission,
			Color:        r.Specs.Color,
		}
	}
	return d
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}

func (r ServiceRequest) ToDraft() usecase.ServiceDraft {
	return usecase.ServiceDraft{
		Name:        r.Name,
		Price:       r.Price,
		Duration:    r.Duration,
		Description: r.Description,
	}
}
