package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"coffee-order/engine"
	"coffee-order/models"
	"coffee-order/repositories"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrCartNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrSessionFrozen),
		errors.Is(err, repositories.ErrCartContention):
		return http.StatusConflict
	case errors.Is(err, services.ErrPlaceholderID),
		errors.Is(err, services.ErrInvalidRecipe),
		errors.Is(err, services.ErrSizeNotInProduct),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, engine.ErrUnknownSize):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, engine.ErrNoBasePrice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// sizeQuery reads the optional size_id query parameter.
func sizeQuery(c *gin.Context) (*int, bool) {
	raw := c.Query("size_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid size_id",
		})
		return nil, false
	}
	return &id, true
}
