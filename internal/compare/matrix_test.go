package compare

import (
	"fmt"
	"testing"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

func plainPrice(amount float64) string {
	return fmt.Sprintf("₹%.0f", amount)
}

func TestBuildMatrixRendersPlaceholderForAbsentAttributes(t *testing.T) {
	products := []models.Product{
		{Name: "Aqua Grand+", Price: 12500, TechnologyType: "RO + UV", Capacity: "12L"},
		{Name: "Pearl Purifier", Price: 9800},
	}

	matrix := BuildMatrix(products, plainPrice)

	if len(matrix.Headers) != 2 || matrix.Headers[0] != "Aqua Grand+" {
		t.Fatalf("unexpected headers: %v", matrix.Headers)
	}

	byLabel := map[string]Row{}
	for _, row := range matrix.Rows {
		byLabel[row.Label] = row
	}

	if got := byLabel["Capacity"].Values; got[0] != "12L" || got[1] != Placeholder {
		t.Fatalf("capacity row wrong: %v", got)
	}
	if got := byLabel["Technology"].Values; got[1] != Placeholder {
		t.Fatalf("expected %q for missing technology, got %q", Placeholder, got[1])
	}
	if got := byLabel["Price"].Values; got[0] != "₹12500" {
		t.Fatalf("price not localized: %v", got)
	}

	// Every cell is filled; no empty strings leak through.
	for _, row := range matrix.Rows {
		if len(row.Values) != len(products) {
			t.Fatalf("row %q has %d cells, want %d", row.Label, len(row.Values), len(products))
		}
		for i, v := range row.Values {
			if v == "" {
				t.Fatalf("row %q cell %d is empty", row.Label, i)
			}
		}
	}
}
