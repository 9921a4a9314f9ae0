package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
)

func formContext(t *testing.T, build func(w *multipart.Writer)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	build(writer)
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/admin/models", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseProductFormTracksWhichFieldsWereSubmitted(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("name", "  AquaPure Pro  ")
		_ = w.WriteField("price", "20000")
		_ = w.WriteField("tags", "premium, smart, ")
	})

	input, image, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if image != nil {
		t.Fatal("no image was attached")
	}
	if !input.NameSet || input.Name != "AquaPure Pro" {
		t.Fatalf("name not trimmed/tracked: %+v", input)
	}
	if !input.PriceSet || input.Price != 20000 {
		t.Fatalf("price not parsed: %+v", input)
	}
	if !input.TagsSet || len(input.Tags) != 2 || input.Tags[1] != "smart" {
		t.Fatalf("tags not split: %v", input.Tags)
	}
	if input.BrandSet || input.DescriptionSet || input.IsActiveSet {
		t.Fatalf("absent fields marked as set: %+v", input)
	}
}

func TestParseProductFormRejectsBadPrice(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("price", "twenty thousand")
	})

	_, _, err := parseProductForm(c)
	if !catalog.IsValidation(err) {
		t.Fatalf("expected validation error for bad price, got %v", err)
	}
}

func TestParseProductFormRejectsUnparseableSpecifications(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("specifications", "Storage: 10L, Power: 45W")
	})

	_, _, err := parseProductForm(c)
	if !catalog.IsValidation(err) {
		t.Fatalf("expected validation error for non-JSON specifications, got %v", err)
	}
}

func TestParseProductFormNormalizesSpecificationValues(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("specifications", `{"Stages":7,"Hot Water":true,"Storage":"12 Liters"}`)
	})

	input, _, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if !input.SpecsSet {
		t.Fatal("specifications should be marked set")
	}
	want := map[string]string{"Stages": "7", "Hot Water": "true", "Storage": "12 Liters"}
	for key, value := range want {
		if input.Specifications[key] != value {
			t.Fatalf("spec %q = %q, want %q", key, input.Specifications[key], value)
		}
	}
}

func TestParseProductFormSplitsGalleryOnNewlines(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("galleryImages", "https://a.example/1.jpg\n\nhttps://a.example/2.jpg\n")
	})

	input, _, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if len(input.GalleryImages) != 2 {
		t.Fatalf("expected 2 gallery urls, got %v", input.GalleryImages)
	}
}

func TestParseProductFormReadsImageFile(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("name", "AquaPure Pro")
		part, _ := w.CreateFormFile("image", "purifier.webp")
		_, _ = part.Write([]byte("webpbytes"))
	})

	_, image, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if image == nil || image.Filename != "purifier.webp" {
		t.Fatalf("image header not returned: %+v", image)
	}
}

func TestParseProductFormAcceptsCheckboxBooleans(t *testing.T) {
	c := formContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("isActive", "on")
	})

	input, _, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if !input.IsActiveSet || !input.IsActive {
		t.Fatalf("checkbox value not accepted: %+v", input)
	}
}
