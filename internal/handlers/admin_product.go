package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
	"github.com/Murugavl/RO-Catalog/internal/models"
)

// FilterByName is the console search: case-insensitive substring match
// against the display name only, applied over the full in-memory list.
func FilterByName(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

/*
GET /api/admin/models?search=
Full product set, inactive included. No fallback substitution here: the
console needs to see an outage, not samples.
*/
func GetAllModels(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/models"

		products, err := repo.ListAll(c.Request.Context())
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		if search := c.Query("search"); search != "" {
			products = FilterByName(products, search)
		}

		c.JSON(http.StatusOK, gin.H{"models": products})
	}
}

/*
POST /api/admin/models
Multipart create. Name and price are required; so is an image, either as
an uploaded file or as an imageUrl field.
*/
func CreateModel(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/models"

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondWithError(c, http.StatusUnsupportedMediaType, route, "multipart/form-data required")
			return
		}

		input, image, err := parseProductForm(c)
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		if !input.NameSet || input.Name == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}
		if !input.PriceSet || input.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be a non-negative number")
			return
		}
		if image == nil && strings.TrimSpace(input.ImageURL) == "" {
			respondWithError(c, http.StatusBadRequest, route, "image required")
			return
		}

		product, err := repo.Create(c.Request.Context(), input, image)
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "model added successfully",
			"model":   product,
		})
	}
}

/*
PUT /api/admin/models/:id
Multipart update; only submitted fields change, the image is optional.
*/
func UpdateModel(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/models/:id"

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			respondWithError(c, http.StatusUnsupportedMediaType, route, "multipart/form-data required")
			return
		}

		input, image, err := parseProductForm(c)
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		product, err := repo.Update(c.Request.Context(), c.Param("id"), input, image)
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "model updated successfully",
			"model":   product,
		})
	}
}

/*
DELETE /api/admin/models/:id
Hard delete. Confirmation lives at the caller; this deletes exactly the
id it was given and the console reloads the list afterward.
*/
func DeleteModel(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/models/:id"

		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondRepoError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "model deleted successfully"})
	}
}

/*
PATCH /api/admin/models/:id/active {"isActive": bool}
Partial update flipping public visibility. Table backend only; the REST
backend answers 501.
*/
func ToggleModelActive(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/admin/models/:id/active"

		var req struct {
			IsActive *bool `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
			respondWithError(c, http.StatusBadRequest, route, "isActive must be boolean")
			return
		}

		product, err := repo.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
		if err != nil {
			respondRepoError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "model updated successfully",
			"model":   product,
		})
	}
}
