package controllers

import (
	"net/http"

	"coffee-order/models"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipeService *services.RecipeService
}

func NewRecipeController(recipeService *services.RecipeService) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

func scopeOf(sizeID *int) models.RecipeScope {
	if sizeID == nil {
		return models.DefaultScope()
	}
	return models.SizeScope(*sizeID)
}

// @Summary Get one recipe layer
// @Description Without size_id the product default layer is returned
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Param size_id query int false "Size ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id}/recipe [get]
func (ctrl *RecipeController) GetRecipe(c *gin.Context) {
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	sizeID, ok := sizeQuery(c)
	if !ok {
		return
	}

	entries, err := ctrl.recipeService.GetRecipe(c.Request.Context(), productID, scopeOf(sizeID))
	if err != nil {
		respondError(c, "Failed to retrieve recipe", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Recipe retrieved successfully",
		Data:    entries,
	})
}

// @Summary Replace one recipe layer
// @Description Duplicate ingredients keep the first row; rows missing from the request are deleted
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param size_id query int false "Size ID"
// @Param request body models.SetRecipeRequest true "Recipe entries"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/{id}/recipe [put]
func (ctrl *RecipeController) SetRecipe(c *gin.Context) {
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}
	sizeID, ok := sizeQuery(c)
	if !ok {
		return
	}

	var req models.SetRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	result, err := ctrl.recipeService.SetRecipe(c.Request.Context(), productID, scopeOf(sizeID), req.Entries)
	if err != nil {
		respondError(c, "Failed to save recipe", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Recipe saved successfully",
		Data:    result,
	})
}
