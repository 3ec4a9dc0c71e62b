package controllers

import (
	"net/http"

	"coffee-order/models"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// @Summary Get a cart with totals
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [get]
func (ctrl *CartController) Get(c *gin.Context) {
	cart, err := ctrl.cartService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Cart not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    cart,
	})
}

// @Summary Change the quantity of a cart line
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param lineId path string true "Line ID"
// @Param request body models.UpdateLineRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/lines/{lineId} [patch]
func (ctrl *CartController) UpdateLine(c *gin.Context) {
	var req models.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	cart, err := ctrl.cartService.SetLineQuantity(c.Request.Context(), c.Param("id"), c.Param("lineId"), req.Quantity)
	if err != nil {
		respondError(c, "Failed to update cart line", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart line updated",
		Data:    cart,
	})
}

// @Summary Remove a cart line
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param lineId path string true "Line ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/lines/{lineId} [delete]
func (ctrl *CartController) RemoveLine(c *gin.Context) {
	cart, err := ctrl.cartService.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("lineId"))
	if err != nil {
		respondError(c, "Failed to remove cart line", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart line removed",
		Data:    cart,
	})
}

// @Summary Abandon a cart
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [delete]
func (ctrl *CartController) Discard(c *gin.Context) {
	if err := ctrl.cartService.Discard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Cart not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart discarded",
	})
}

// @Summary Check out a cart
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	order, err := ctrl.cartService.Checkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Checkout failed", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}
