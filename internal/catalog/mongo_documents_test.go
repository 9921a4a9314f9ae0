package catalog

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeProductDocumentAliasesLegacyKeys(t *testing.T) {
	raw := bson.M{
		"_id":             primitive.NewObjectID(),
		"model_name":      "Aqua Grand+",
		"image_url":       "/uploads/products/a.jpg",
		"technology_type": "RO+UV",
		"is_active":       false,
		"price":           12500.0,
	}

	p, err := normalizeProductDocument(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if p.Name != "Aqua Grand+" {
		t.Fatalf("Name = %q", p.Name)
	}
	if p.ImageURL != "/uploads/products/a.jpg" {
		t.Fatalf("ImageURL = %q", p.ImageURL)
	}
	if p.TechnologyType != "RO+UV" {
		t.Fatalf("TechnologyType = %q", p.TechnologyType)
	}
	if p.IsActive {
		t.Fatal("legacy is_active=false must survive aliasing")
	}
}

func TestNormalizeProductDocumentPrefersCanonicalKeys(t *testing.T) {
	raw := bson.M{
		"model_name": "old name",
		"name":       "new name",
		"price":      100.0,
	}

	p, err := normalizeProductDocument(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Name != "new name" {
		t.Fatalf("canonical key must win, got %q", p.Name)
	}
}

func TestNormalizeProductDocumentCoercesPrice(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{int32(9800), 9800},
		{int64(14500), 14500},
		{12500.5, 12500.5},
		{"not a number", 0},
	}
	for _, tc := range cases {
		p, err := normalizeProductDocument(bson.M{"name": "x", "price": tc.in})
		if err != nil {
			t.Fatalf("normalize %v: %v", tc.in, err)
		}
		if p.Price != tc.want {
			t.Errorf("price %v decoded as %v, want %v", tc.in, p.Price, tc.want)
		}
	}
}

func TestNormalizeProductDocumentDefaultsActive(t *testing.T) {
	p, err := normalizeProductDocument(bson.M{"name": "x", "price": 1.0})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !p.IsActive {
		t.Fatal("documents without the flag must read as active")
	}
}

func TestNormalizeProductDocumentParsesStringDates(t *testing.T) {
	p, err := normalizeProductDocument(bson.M{
		"name":       "x",
		"price":      1.0,
		"created_at": "2024-03-01T10:30:00Z",
		"updated_at": "garbage",
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !p.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", p.CreatedAt, want)
	}
	if !p.UpdatedAt.IsZero() {
		t.Fatalf("unparseable date should be dropped, got %v", p.UpdatedAt)
	}
}

func TestNormalizeProductDocumentKeepsLegacyStringTags(t *testing.T) {
	p, err := normalizeProductDocument(bson.M{
		"name":  "x",
		"price": 1.0,
		"tags":  "premium, smart",
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "premium" {
		t.Fatalf("tags = %v", p.Tags)
	}
}
