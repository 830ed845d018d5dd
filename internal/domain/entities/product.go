package entities

type ProductCategory string

const (
	ProductCategoryJantes  ProductCategory = "Jantes"
	ProductCategoryPneus   ProductCategory = "Pneus"
	ProductCategoryKits    ProductCategory = "Kits"
	ProductCategoryMotos   ProductCategory = "Motos"
	ProductCategoryServico ProductCategory = "Serviço"

	// ProductCategoryAll is the storefront filter value meaning "no category filter".
	ProductCategoryAll ProductCategory = "Tudo"
)

var ProductCategories = []ProductCategory{
	ProductCategoryJantes,
	ProductCategoryPneus,
	ProductCategoryKits,
	ProductCategoryMotos,
	ProductCategoryServico,
}

func (c ProductCategory) IsValid() bool {
	for _, v := range ProductCategories {
		if c == v {
			return true
		}
	}
	return false
}

type ProductSpecs struct {
	Year         *int   `json:"year,omitempty"`
	Mileage      *int   `json:"mileage,omitempty"`
	EngineSize   string `json:"engine_size,omitempty"`
	Power        string `json:"power,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Color        string `json:"color,omitempty"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Featured    bool            `json:"featured"`
	Gallery     []string        `json:"gallery,omitempty"`
	Specs       *ProductSpecs   `json:"specs,omitempty"`
}
