package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
	"github.com/Murugavl/RO-Catalog/internal/compare"
	"github.com/Murugavl/RO-Catalog/internal/models"
)

// The selection lives in a session cookie: ephemeral, per visitor, gone
// when the browser session ends. Nothing about it is stored server-side.
const compareCookie = "compareSelection"

func readSelection(c *gin.Context) *compare.Selector {
	value, err := c.Cookie(compareCookie)
	if err != nil || value == "" {
		return compare.NewSelector(nil)
	}
	return compare.NewSelector(strings.Split(value, ","))
}

func writeSelection(c *gin.Context, s *compare.Selector) {
	c.SetCookie(compareCookie, strings.Join(s.Selected(), ","), 0, "/", "", false, true)
}

func itemsToProducts(items []catalogItem) []models.Product {
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		products = append(products, item.Product)
	}
	return products
}

/*
GET /api/compare
Empty selection: the selectable grid of all loaded products.
Non-empty: the feature-by-feature comparison table.
*/
func GetCompare(repo catalog.Repository, site *Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		selector := readSelection(c)
		result := catalog.ListWithFallback(c.Request.Context(), repo)

		if selector.Len() == 0 {
			c.JSON(http.StatusOK, gin.H{
				"mode":     "select",
				"source":   result.Source,
				"products": site.renderItems(result.Products),
			})
			return
		}

		selected := selector.Selected()
		columns := make([]catalogItem, 0, len(selected))
		for _, id := range selected {
			for _, p := range result.Products {
				if p.ID.Hex() == id {
					columns = append(columns, site.renderItem(p))
					break
				}
			}
		}

		matrix := compare.BuildMatrix(itemsToProducts(columns), site.formatPrice)
		c.JSON(http.StatusOK, gin.H{
			"mode":     "table",
			"source":   result.Source,
			"selected": selected,
			"full":     selector.Full(),
			"matrix":   matrix,
		})
	}
}

/*
POST /api/compare/toggle {"id": "..."}
Removes a selected product, appends an unselected one while under the
cap, and is a no-op at capacity.
*/
func ToggleCompare(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/compare/toggle"

		var req struct {
			ID string `json:"id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ID) == "" {
			respondWithError(c, http.StatusBadRequest, route, "id required")
			return
		}
		id := strings.TrimSpace(req.ID)

		result := catalog.ListWithFallback(c.Request.Context(), repo)
		known := false
		for _, p := range result.Products {
			if p.ID.Hex() == id {
				known = true
				break
			}
		}
		if !known {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		selector := readSelection(c)
		changed := selector.Toggle(id)
		writeSelection(c, selector)

		c.JSON(http.StatusOK, gin.H{
			"changed":  changed,
			"selected": selector.Selected(),
			"full":     selector.Full(),
		})
	}
}

/*
POST /api/compare/clear
*/
func ClearCompare() gin.HandlerFunc {
	return func(c *gin.Context) {
		selector := readSelection(c)
		selector.Clear()
		writeSelection(c, selector)
		c.JSON(http.StatusOK, gin.H{"selected": selector.Selected()})
	}
}
