package controllers

import (
	"net/http"

	"coffee-order/models"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
)

type CustomizationController struct {
	customizationService *services.CustomizationService
}

func NewCustomizationController(customizationService *services.CustomizationService) *CustomizationController {
	return &CustomizationController{customizationService: customizationService}
}

// @Summary Open a customization session
// @Tags Customizations
// @Accept json
// @Produce json
// @Param request body models.OpenSessionRequest true "Product and optional size"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customizations [post]
func (ctrl *CustomizationController) Open(c *gin.Context) {
	var req models.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	view, err := ctrl.customizationService.Open(c.Request.Context(), req.ProductID, req.SizeID)
	if err != nil {
		respondError(c, "Failed to open customization", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Customization opened",
		Data:    view,
	})
}

// @Summary Get a customization session
// @Tags Customizations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customizations/{id} [get]
func (ctrl *CustomizationController) Get(c *gin.Context) {
	view, err := ctrl.customizationService.View(c.Param("id"))
	if err != nil {
		respondError(c, "Customization not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Customization retrieved",
		Data:    view,
	})
}

// @Summary Adjust an ingredient quantity
// @Description Positive delta adds, negative delta removes; quantities never drop below zero
// @Tags Customizations
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AdjustRequest true "Ingredient and delta"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /customizations/{id}/adjust [post]
func (ctrl *CustomizationController) Adjust(c *gin.Context) {
	var req models.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	view, err := ctrl.customizationService.Adjust(c.Param("id"), req.IngredientID, req.Delta)
	if err != nil {
		respondError(c, "Failed to adjust ingredient", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ingredient adjusted",
		Data:    view,
	})
}

// @Summary Select another size
// @Tags Customizations
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SelectSizeRequest true "Size"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /customizations/{id}/size [post]
func (ctrl *CustomizationController) SelectSize(c *gin.Context) {
	var req models.SelectSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	view, err := ctrl.customizationService.SelectSize(c.Param("id"), req.SizeID)
	if err != nil {
		respondError(c, "Failed to select size", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Size selected",
		Data:    view,
	})
}

// @Summary Confirm a customization into the cart
// @Tags Customizations
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ConfirmRequest false "Cart and quantity"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customizations/{id}/confirm [post]
func (ctrl *CustomizationController) Confirm(c *gin.Context) {
	var req models.ConfirmRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
	}

	resp, err := ctrl.customizationService.Confirm(c.Request.Context(), c.Param("id"), req.CartID, req.Quantity)
	if err != nil {
		respondError(c, "Failed to confirm customization", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to cart",
		Data:    resp,
	})
}

// @Summary Discard a customization session
// @Tags Customizations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customizations/{id} [delete]
func (ctrl *CustomizationController) Discard(c *gin.Context) {
	if err := ctrl.customizationService.Discard(c.Param("id")); err != nil {
		respondError(c, "Customization not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Customization discarded",
	})
}
