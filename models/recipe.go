package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RecipeScope selects a recipe layer: nil SizeID is the product DEFAULT layer.
type RecipeScope struct {
	SizeID *int
}

func DefaultScope() RecipeScope {
	return RecipeScope{}
}

func SizeScope(sizeID int) RecipeScope {
	return RecipeScope{SizeID: &sizeID}
}

func (s RecipeScope) IsDefault() bool {
	return s.SizeID == nil
}

func (s RecipeScope) String() string {
	if s.SizeID == nil {
		return "default"
	}
	return strconv.Itoa(*s.SizeID)
}

type RecipeEntry struct {
	ID               int              `json:"id"`
	ProductID        int              `json:"product_id"`
	SizeID           *int             `json:"size_id"`
	IngredientID     int              `json:"ingredient_id"`
	DefaultAmount    decimal.Decimal  `json:"default_amount"`
	UnitTypeOverride *UnitRef         `json:"unit_type_override,omitempty"`
	IsRequired       bool             `json:"is_required"`
	IsRemovable      bool             `json:"is_removable"`
	IsAddable        bool             `json:"is_addable"`
	UseDefaultPrice  bool             `json:"use_default_price"`
	CustomPrice      *decimal.Decimal `json:"custom_price,omitempty"`
}

func (e RecipeEntry) Scope() RecipeScope {
	return RecipeScope{SizeID: e.SizeID}
}

// UnitFor falls back to the ingredient's own unit when no override is set.
func (e RecipeEntry) UnitFor(ing Ingredient) UnitRef {
	if e.UnitTypeOverride != nil {
		return *e.UnitTypeOverride
	}
	return ing.UnitType
}

// EffectiveRecipe is the resolved single-layer recipe keyed by ingredient id.
type EffectiveRecipe map[int]RecipeEntry

// RecipeEntryInput is one row of a staff recipe save.
type RecipeEntryInput struct {
	IngredientID    int              `json:"ingredient_id" validate:"gte=0"`
	Amount          decimal.Decimal  `json:"amount"`
	UnitType        string           `json:"unit_type" validate:"omitempty,max=50"`
	IsRequired      bool             `json:"is_required"`
	IsRemovable     bool             `json:"is_removable"`
	IsAddable       bool             `json:"is_addable"`
	UseDefaultPrice bool             `json:"use_default_price"`
	CustomPrice     *decimal.Decimal `json:"custom_price,omitempty"`
}
