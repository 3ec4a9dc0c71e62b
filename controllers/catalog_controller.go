package controllers

import (
	"net/http"

	"coffee-order/models"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// @Summary List unit types
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /unit-types [get]
func (ctrl *CatalogController) GetUnitTypes(c *gin.Context) {
	units, err := ctrl.catalogService.UnitTypes(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve unit types", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Unit types retrieved successfully",
		Data:    units,
	})
}

// @Summary List ingredients
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /ingredients [get]
func (ctrl *CatalogController) GetIngredients(c *gin.Context) {
	ingredients, err := ctrl.catalogService.Ingredients(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve ingredients", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ingredients retrieved successfully",
		Data:    ingredients,
	})
}

// @Summary List product sizes
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/sizes [get]
func (ctrl *CatalogController) GetProductSizes(c *gin.Context) {
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}

	sizes, err := ctrl.catalogService.ProductSizes(c.Request.Context(), productID)
	if err != nil {
		respondError(c, "Failed to retrieve sizes", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sizes retrieved successfully",
		Data:    sizes,
	})
}

// @Summary Effective recipe of a product
// @Description Default recipe with the size layer applied when size_id is given
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Param size_id query int false "Size ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/recipe [get]
func (ctrl *CatalogController) GetEffectiveRecipe(c *gin.Context) {
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	sizeID, ok := sizeQuery(c)
	if !ok {
		return
	}

	entries, err := ctrl.catalogService.EffectiveRecipe(c.Request.Context(), productID, sizeID)
	if err != nil {
		respondError(c, "Failed to resolve recipe", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Recipe retrieved successfully",
		Data:    entries,
	})
}
