// Package seed holds the demo data every empty store starts from.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"arton_garage/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Settings         entities.StoreSettings     `json:"settings"`
	Products         []entities.Product         `json:"products"`
	Services         []entities.Service         `json:"services"`
	Leads            []entities.Lead            `json:"leads"`
	BlogPosts        []entities.BlogPost        `json:"blog_posts"`
	FinancialRecords []entities.FinancialRecord `json:"financial_records"`
	WorkOrders       []entities.WorkOrder       `json:"work_orders"`
	Appointments     []entities.Appointment     `json:"appointments"`
}

// Default returns the embedded demo data.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// Parse reads a YAML seed. Keys follow the entities' JSON names, so the
// document is decoded generically and then bound through encoding/json.
func Parse(doc []byte) (Data, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Data{}, fmt.Errorf("parse seed yaml: %w", err)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return Data{}, fmt.Errorf("convert seed: %w", err)
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("bind seed: %w", err)
	}
	return d, nil
}
