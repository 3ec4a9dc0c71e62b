package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotEntry is one ingredient of a confirmed line, frozen at confirmation time.
type SnapshotEntry struct {
	IngredientID       int             `json:"ingredient_id"`
	IngredientName     string          `json:"ingredient_name,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	UnitType           UnitRef         `json:"unit_type"`
	WasInDefaultRecipe bool            `json:"was_in_default_recipe"`
	DefaultAmount      decimal.Decimal `json:"default_amount"`
}

// Differs reports whether the buyer moved this ingredient off its recipe default.
func (e SnapshotEntry) Differs() bool {
	return !e.Amount.Equal(e.DefaultAmount)
}

type CartLine struct {
	ID              string          `json:"id"`
	ProductID       int             `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	SelectedSizeID  *int            `json:"selected_size_id"`
	SizeName        string          `json:"size_name,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Quantity        int             `json:"quantity"`
	RecipeSnapshot  []SnapshotEntry `json:"recipe_snapshot"`
	Customizations  []SnapshotEntry `json:"customizations"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CartTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartView struct {
	ID     string     `json:"id"`
	Lines  []CartLine `json:"lines"`
	Totals CartTotals `json:"totals"`
}
