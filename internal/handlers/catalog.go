package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
	"github.com/Murugavl/RO-Catalog/internal/contact"
)

/*
GET /api/catalog
Public listing. A failed or empty read degrades to the sample catalog;
the response says which one the client got.
*/
func GetCatalog(repo catalog.Repository, site *Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := catalog.ListWithFallback(c.Request.Context(), repo)
		c.JSON(http.StatusOK, gin.H{
			"source":   result.Source,
			"products": site.renderItems(result.Products),
		})
	}
}

/*
GET /api/catalog/:id
Detail page. When the live read fails the sample set is searched instead,
so a bookmarked sample product still renders during an outage.
*/
func GetCatalogItem(repo catalog.Repository, site *Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/catalog/:id"
		id := c.Param("id")

		product, err := repo.Get(c.Request.Context(), id)
		if err != nil && err != catalog.ErrNotFound {
			for _, sample := range catalog.FallbackProducts() {
				if sample.ID.Hex() == id {
					c.JSON(http.StatusOK, gin.H{
						"source":  catalog.SourceFallback,
						"product": site.renderItem(sample),
					})
					return
				}
			}
			respondWithError(c, http.StatusServiceUnavailable, route, "catalog unavailable")
			return
		}
		if err == catalog.ErrNotFound || product == nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"source":  catalog.SourceLive,
			"product": site.renderItem(*product),
		})
	}
}

/*
GET /api/contact
Fixed business contact points plus the general-inquiry deep links.
*/
func GetContact(site *Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"phone":        site.Contact.Phone,
			"email":        site.Contact.Email,
			"phoneLink":    site.Contact.PhoneLink(),
			"emailLink":    site.Contact.EmailLink(""),
			"whatsappLink": site.Contact.WhatsAppLink(contact.GeneralInquiryMessage(site.Locale)),
		})
	}
}
