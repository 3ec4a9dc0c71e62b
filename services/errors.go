package services

import "errors"

var (
	ErrPlaceholderID      = errors.New("placeholder or missing id")
	ErrInvalidRecipe      = errors.New("invalid recipe entry")
	ErrSizeNotInProduct   = errors.New("size does not belong to product")
	ErrProductUnavailable = errors.New("product is not available")
	ErrSessionNotFound    = errors.New("customization session not found")
	ErrLineNotFound       = errors.New("cart line not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyCart          = errors.New("cart is empty")
)
