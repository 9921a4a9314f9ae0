package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
	"github.com/Murugavl/RO-Catalog/internal/contact"
	"github.com/Murugavl/RO-Catalog/internal/models"
)

// Site bundles the presentation-side settings the public handlers share:
// contact points, display locale and the origin for relative image paths.
type Site struct {
	Contact contact.Info
	Locale  language.Tag
	BaseURL string

	formatPrice func(float64) string
}

func NewSite(info contact.Info, locale language.Tag, baseURL string) *Site {
	return &Site{
		Contact:     info,
		Locale:      locale,
		BaseURL:     baseURL,
		formatPrice: contact.PriceFormatter(locale),
	}
}

// catalogItem is a product decorated for rendering: resolved image URL,
// localized price and the per-product contact deep links.
type catalogItem struct {
	models.Product
	DisplayPrice string `json:"displayPrice"`
	WhatsAppLink string `json:"whatsappLink"`
	PhoneLink    string `json:"phoneLink"`
	EmailLink    string `json:"emailLink"`
}

func (s *Site) renderItem(p models.Product) catalogItem {
	p.ImageURL = models.ResolveImageURL(p.ImageURL, s.BaseURL)
	gallery := make(models.StringList, 0, len(p.GalleryImages))
	for _, ref := range p.GalleryImages {
		gallery = append(gallery, models.ResolveImageURL(ref, s.BaseURL))
	}
	p.GalleryImages = gallery

	display := ""
	if p.Price > 0 {
		display = s.formatPrice(p.Price)
	}
	return catalogItem{
		Product:      p,
		DisplayPrice: display,
		WhatsAppLink: s.Contact.WhatsAppLink(contact.InquiryMessage(s.Locale, p.Name)),
		PhoneLink:    s.Contact.PhoneLink(),
		EmailLink:    s.Contact.EmailLink(contact.EmailSubject(p.Name)),
	}
}

func (s *Site) renderItems(products []models.Product) []catalogItem {
	items := make([]catalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, s.renderItem(p))
	}
	return items
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondRepoError maps repository failures to HTTP statuses. Validation
// messages pass through on a 400; everything unexpected collapses to a
// generic 500 so internals never leak.
func respondRepoError(c *gin.Context, route string, err error) {
	switch {
	case catalog.IsValidation(err):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case err == catalog.ErrUnauthorized:
		respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
	case err == catalog.ErrNotFound:
		respondWithError(c, http.StatusNotFound, route, "product not found")
	case err == catalog.ErrNotSupported:
		respondWithError(c, http.StatusNotImplemented, route, err.Error())
	default:
		log.Printf("[%s] repository error: %v", route, err)
		respondWithError(c, http.StatusInternalServerError, route, "catalog error")
	}
}
