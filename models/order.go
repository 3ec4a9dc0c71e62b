package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int             `json:"id"`
	CartID    string          `json:"cart_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	Items     []CartLine      `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
