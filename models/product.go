package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	TaxRate         decimal.Decimal  `json:"tax_rate"`
	HasSizes        bool             `json:"has_sizes"`
	FixedSizeOunces *decimal.Decimal `json:"fixed_size_ounces,omitempty"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type ProductSize struct {
	ID           int             `json:"id"`
	ProductID    int             `json:"product_id"`
	SizeName     string          `json:"size_name"`
	SizeOunces   decimal.Decimal `json:"size_ounces"`
	Price        decimal.Decimal `json:"price"`
	DisplayOrder int             `json:"display_order"`
	Available    bool            `json:"available"`
}
