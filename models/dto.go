package models

import "github.com/shopspring/decimal"

type OpenSessionRequest struct {
	ProductID int  `json:"product_id" binding:"required,gt=0"`
	SizeID    *int `json:"size_id" binding:"omitempty,gt=0"`
}

type AdjustRequest struct {
	IngredientID int             `json:"ingredient_id" binding:"required"`
	Delta        decimal.Decimal `json:"delta"`
}

type SelectSizeRequest struct {
	SizeID int `json:"size_id" binding:"required,gt=0"`
}

type ConfirmRequest struct {
	CartID   string `json:"cart_id"`
	Quantity int    `json:"quantity" binding:"omitempty,gte=0"`
}

type UpdateLineRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type SetRecipeRequest struct {
	Entries []RecipeEntryInput `json:"entries"`
}

type SetRecipeResult struct {
	ProductID int    `json:"product_id"`
	Scope     string `json:"scope"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Deleted   int    `json:"deleted"`
	Dropped   []int  `json:"dropped_duplicates,omitempty"`
}

// IngredientLine is one row of the customization dialog.
type IngredientLine struct {
	IngredientID  int                `json:"ingredient_id"`
	Name          string             `json:"name"`
	Category      IngredientCategory `json:"category"`
	UnitType      UnitRef            `json:"unit_type"`
	UnitCost      decimal.Decimal    `json:"unit_cost"`
	Quantity      decimal.Decimal    `json:"quantity"`
	DefaultAmount decimal.Decimal    `json:"default_amount"`
	InRecipe      bool               `json:"in_recipe"`
	IsRequired    bool               `json:"is_required"`
	IsRemovable   bool               `json:"is_removable"`
	IsAddable     bool               `json:"is_addable"`
}

type SessionView struct {
	ID              string           `json:"id"`
	ProductID       int              `json:"product_id"`
	ProductName     string           `json:"product_name"`
	SelectedSizeID  *int             `json:"selected_size_id"`
	Sizes           []ProductSize    `json:"sizes,omitempty"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	PriceAdjustment decimal.Decimal  `json:"price_adjustment"`
	FinalPrice      decimal.Decimal  `json:"final_price"`
	CurrentRecipe   []IngredientLine `json:"current_recipe"`
	AvailableToAdd  []IngredientLine `json:"available_to_add"`
	Degraded        bool             `json:"degraded,omitempty"`
}

type ConfirmResponse struct {
	CartID string   `json:"cart_id"`
	Line   CartLine `json:"line"`
	Cart   CartView `json:"cart"`
}
