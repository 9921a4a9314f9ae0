package compare

import (
	"github.com/Murugavl/RO-Catalog/internal/models"
)

// Placeholder is rendered for any absent attribute, never an empty cell.
const Placeholder = "N/A"

// Row is one attribute across the selected products, column order
// matching selection order.
type Row struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Matrix is the comparison table: a header of product names plus one
// row per attribute.
type Matrix struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

type attribute struct {
	label string
	value func(models.Product) string
}

// BuildMatrix renders the feature table for the selected products.
// formatPrice localizes the price cell; the remaining attributes are the
// descriptive strings as stored.
func BuildMatrix(products []models.Product, formatPrice func(float64) string) Matrix {
	attributes := []attribute{
		{"Image", func(p models.Product) string { return p.ImageURL }},
		{"Price", func(p models.Product) string {
			if p.Price <= 0 {
				return ""
			}
			return formatPrice(p.Price)
		}},
		{"Technology", func(p models.Product) string { return p.TechnologyType }},
		{"Capacity", func(p models.Product) string { return p.Capacity }},
		{"Warranty", func(p models.Product) string { return p.Warranty }},
		{"Purification Stages", func(p models.Product) string { return p.PurificationStages }},
		{"Energy Consumption", func(p models.Product) string { return p.EnergyConsumption }},
		{"Dimensions", func(p models.Product) string { return p.Dimensions }},
		{"Weight", func(p models.Product) string { return p.Weight }},
		{"Description", func(p models.Product) string { return p.Description }},
	}

	matrix := Matrix{
		Headers: make([]string, 0, len(products)),
		Rows:    make([]Row, 0, len(attributes)),
	}
	for _, p := range products {
		matrix.Headers = append(matrix.Headers, p.Name)
	}

	for _, attr := range attributes {
		row := Row{Label: attr.label, Values: make([]string, 0, len(products))}
		for _, p := range products {
			value := attr.value(p)
			if value == "" {
				value = Placeholder
			}
			row.Values = append(row.Values, value)
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}
