package engine

import (
	"fmt"
	"sort"

	"coffee-order/models"

	"github.com/shopspring/decimal"
)

type SessionInput struct {
	ID          string
	Product     models.Product
	Sizes       []models.ProductSize
	Entries     []models.RecipeEntry
	Ingredients []models.Ingredient
	SizeID      *int
	Degraded    bool
}

// Session is the mutable state of one customization dialog.
//
// Every ingredient of the effective recipe has a quantity, possibly zero.
// Ingredients added by the buyer from outside the recipe are present only
// while their quantity is positive.
type Session struct {
	ID       string
	Product  models.Product
	Degraded bool

	sizes      []models.ProductSize
	entries    []models.RecipeEntry
	catalog    models.IngredientCatalog
	sizeID     *int
	basePrice  decimal.Decimal
	recipe     models.EffectiveRecipe
	quantities map[int]decimal.Decimal
	frozen     bool
}

func NewSession(in SessionInput) (*Session, error) {
	s := &Session{
		ID:       in.ID,
		Product:  in.Product,
		Degraded: in.Degraded,
		sizes:    availableSizes(in.Sizes),
		entries:  in.Entries,
		catalog:  models.NewIngredientCatalog(in.Ingredients),
	}

	switch {
	case in.SizeID != nil:
		size, ok := s.findSize(*in.SizeID)
		if !ok {
			return nil, fmt.Errorf("%w: size %d, product %d", ErrUnknownSize, *in.SizeID, in.Product.ID)
		}
		s.setSize(size)
	case len(s.sizes) > 0:
		s.setSize(s.sizes[0])
	case in.Product.Price != nil:
		s.basePrice = *in.Product.Price
	default:
		return nil, fmt.Errorf("%w: product %d", ErrNoBasePrice, in.Product.ID)
	}

	s.recipe = Resolve(in.Product.ID, s.sizeID, s.entries)
	s.quantities = Initialize(s.recipe)
	return s, nil
}

// Initialize seeds quantities from the recipe defaults.
func Initialize(recipe models.EffectiveRecipe) map[int]decimal.Decimal {
	quantities := make(map[int]decimal.Decimal, len(recipe))
	for id, entry := range recipe {
		quantities[id] = entry.DefaultAmount
	}
	return quantities
}

func availableSizes(sizes []models.ProductSize) []models.ProductSize {
	out := make([]models.ProductSize, 0, len(sizes))
	for _, size := range sizes {
		if size.Available {
			out = append(out, size)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Session) findSize(sizeID int) (models.ProductSize, bool) {
	for _, size := range s.sizes {
		if size.ID == sizeID && size.ProductID == s.Product.ID {
			return size, true
		}
	}
	return models.ProductSize{}, false
}

func (s *Session) setSize(size models.ProductSize) {
	id := size.ID
	s.sizeID = &id
	s.basePrice = size.Price
}

// Adjust adds delta to an ingredient's quantity, clamping at zero.
// Ids that are neither in the recipe nor addable from the catalog are ignored.
func (s *Session) Adjust(ingredientID int, delta decimal.Decimal) {
	if s.frozen {
		return
	}
	_, inRecipe := s.recipe[ingredientID]
	if !inRecipe && !s.addable(ingredientID) {
		return
	}

	next := s.quantities[ingredientID].Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}
	if !inRecipe && next.IsZero() {
		delete(s.quantities, ingredientID)
		return
	}
	s.quantities[ingredientID] = next
}

func (s *Session) addable(ingredientID int) bool {
	ing, ok := s.catalog[ingredientID]
	return ok && ing.Available
}

// SelectSize re-resolves the recipe for another size. Recipe ingredients go
// back to the new defaults; add-ins outside the new recipe are kept.
func (s *Session) SelectSize(sizeID int) error {
	if s.frozen {
		return ErrSessionFrozen
	}
	size, ok := s.findSize(sizeID)
	if !ok {
		return fmt.Errorf("%w: size %d, product %d", ErrUnknownSize, sizeID, s.Product.ID)
	}

	previous := s.recipe
	s.setSize(size)
	s.recipe = Resolve(s.Product.ID, s.sizeID, s.entries)

	quantities := Initialize(s.recipe)
	for id, qty := range s.quantities {
		if _, wasInRecipe := previous[id]; wasInRecipe {
			continue
		}
		if _, nowInRecipe := s.recipe[id]; nowInRecipe {
			continue
		}
		quantities[id] = qty
	}
	s.quantities = quantities
	return nil
}

func (s *Session) Quantity(ingredientID int) decimal.Decimal {
	return s.quantities[ingredientID]
}

// Quantities returns a copy of the current quantity map.
func (s *Session) Quantities() map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(s.quantities))
	for id, qty := range s.quantities {
		out[id] = qty
	}
	return out
}

func (s *Session) Recipe() models.EffectiveRecipe {
	return s.recipe
}

func (s *Session) Catalog() models.IngredientCatalog {
	return s.catalog
}

func (s *Session) SizeID() *int {
	if s.sizeID == nil {
		return nil
	}
	id := *s.sizeID
	return &id
}

func (s *Session) Sizes() []models.ProductSize {
	return s.sizes
}

func (s *Session) BasePrice() decimal.Decimal {
	return s.basePrice
}

func (s *Session) Frozen() bool {
	return s.frozen
}

func (s *Session) Price() PriceResult {
	return Price(s.basePrice, s.recipe, s.quantities, s.catalog)
}

// CurrentRecipe lists every ingredient with a positive quantity.
func (s *Session) CurrentRecipe() []models.IngredientLine {
	lines := []models.IngredientLine{}
	for id, qty := range s.quantities {
		if qty.IsPositive() {
			lines = append(lines, s.line(id))
		}
	}
	sortLines(lines)
	return lines
}

// AvailableToAdd lists recipe ingredients reduced to zero and every available
// catalog ingredient the buyer has not added.
func (s *Session) AvailableToAdd() []models.IngredientLine {
	lines := []models.IngredientLine{}
	for id := range s.recipe {
		if !s.quantities[id].IsPositive() {
			lines = append(lines, s.line(id))
		}
	}
	for id, ing := range s.catalog {
		if _, inRecipe := s.recipe[id]; inRecipe || !ing.Available {
			continue
		}
		if s.quantities[id].IsPositive() {
			continue
		}
		lines = append(lines, s.line(id))
	}
	sortLines(lines)
	return lines
}

func (s *Session) line(id int) models.IngredientLine {
	ing, known := s.catalog[id]
	if !known {
		ing = models.Ingredient{ID: id, Name: fmt.Sprintf("ingredient #%d", id)}
	}

	line := models.IngredientLine{
		IngredientID: id,
		Name:         ing.Name,
		Category:     ing.Category,
		UnitType:     ing.UnitType,
		UnitCost:     ing.UnitCost,
		Quantity:     s.quantities[id],
		IsAddable:    true,
		IsRemovable:  true,
	}
	if entry, ok := s.recipe[id]; ok {
		line.InRecipe = true
		line.DefaultAmount = entry.DefaultAmount
		line.UnitType = entry.UnitFor(ing)
		line.IsRequired = entry.IsRequired
		line.IsRemovable = entry.IsRemovable
		line.IsAddable = entry.IsAddable
	}
	return line
}

func sortLines(lines []models.IngredientLine) {
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.IngredientID < b.IngredientID
	})
}

// View renders the dialog state for the presentation layer.
func (s *Session) View() models.SessionView {
	price := s.Price()
	return models.SessionView{
		ID:              s.ID,
		ProductID:       s.Product.ID,
		ProductName:     s.Product.Name,
		SelectedSizeID:  s.SizeID(),
		Sizes:           s.sizes,
		BasePrice:       s.basePrice,
		PriceAdjustment: price.Adjustment,
		FinalPrice:      price.FinalPrice,
		CurrentRecipe:   s.CurrentRecipe(),
		AvailableToAdd:  s.AvailableToAdd(),
		Degraded:        s.Degraded,
	}
}
