package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"coffee-order/models"
)

// MemoryStore is an in-process CatalogStore for tests and local runs.
type MemoryStore struct {
	mu          sync.RWMutex
	unitTypes   []models.UnitType
	ingredients map[int]models.Ingredient
	products    map[int]models.Product
	sizes       map[int][]models.ProductSize
	entries     map[int]models.RecipeEntry
	nextEntryID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ingredients: make(map[int]models.Ingredient),
		products:    make(map[int]models.Product),
		sizes:       make(map[int][]models.ProductSize),
		entries:     make(map[int]models.RecipeEntry),
		nextEntryID: 1,
	}
}

func (m *MemoryStore) AddUnitType(u models.UnitType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unitTypes = append(m.unitTypes, u)
}

func (m *MemoryStore) AddIngredient(ing models.Ingredient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingredients[ing.ID] = ing
}

func (m *MemoryStore) AddProduct(p models.Product, sizes ...models.ProductSize) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	for _, s := range sizes {
		s.ProductID = p.ID
		m.sizes[p.ID] = append(m.sizes[p.ID], s)
	}
}

// AddRecipeEntry stores e as is, assigning an id when it has none.
func (m *MemoryStore) AddRecipeEntry(e models.RecipeEntry) models.RecipeEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == 0 {
		e.ID = m.nextEntryID
	}
	if e.ID >= m.nextEntryID {
		m.nextEntryID = e.ID + 1
	}
	m.entries[e.ID] = e
	return e
}

func (m *MemoryStore) GetUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	units := append([]models.UnitType{}, m.unitTypes...)
	sort.SliceStable(units, func(i, j int) bool { return units[i].DisplayOrder < units[j].DisplayOrder })
	return units, nil
}

func (m *MemoryStore) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Ingredient, 0, len(m.ingredients))
	for _, ing := range m.ingredients {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (m *MemoryStore) GetProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ProductSize{}, m.sizes[productID]...), nil
}

func (m *MemoryStore) GetRecipeEntries(ctx context.Context, productID int, scope models.RecipeScope) ([]models.RecipeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterEntries(func(e models.RecipeEntry) bool {
		return e.ProductID == productID && sameScope(e.Scope(), scope)
	}), nil
}

func (m *MemoryStore) ListRecipeEntries(ctx context.Context, productID int) ([]models.RecipeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterEntries(func(e models.RecipeEntry) bool { return e.ProductID == productID }), nil
}

func (m *MemoryStore) filterEntries(keep func(models.RecipeEntry) bool) []models.RecipeEntry {
	out := []models.RecipeEntry{}
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemoryStore) SetRecipe(ctx context.Context, shopID string, productID int, scope models.RecipeScope, entries []models.RecipeEntryInput) (models.SetRecipeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := map[int]int{}
	for id, e := range m.entries {
		if e.ProductID == productID && sameScope(e.Scope(), scope) {
			existing[e.IngredientID] = id
		}
	}

	diff := DiffRecipe(existing, entries)
	for _, id := range diff.Delete {
		delete(m.entries, id)
	}
	for id, in := range diff.Update {
		m.entries[id] = entryFromInput(id, productID, scope, in)
	}
	for _, in := range diff.Insert {
		id := m.nextEntryID
		m.nextEntryID++
		m.entries[id] = entryFromInput(id, productID, scope, in)
	}
	return diff.Result(productID, scope), nil
}

func entryFromInput(id, productID int, scope models.RecipeScope, in models.RecipeEntryInput) models.RecipeEntry {
	return models.RecipeEntry{
		ID:               id,
		ProductID:        productID,
		SizeID:           scope.SizeID,
		IngredientID:     in.IngredientID,
		DefaultAmount:    in.Amount,
		UnitTypeOverride: unitOverride(in.UnitType),
		IsRequired:       in.IsRequired,
		IsRemovable:      in.IsRemovable,
		IsAddable:        in.IsAddable,
		UseDefaultPrice:  in.UseDefaultPrice,
		CustomPrice:      in.CustomPrice,
	}
}

func sameScope(a, b models.RecipeScope) bool {
	if a.SizeID == nil || b.SizeID == nil {
		return a.SizeID == nil && b.SizeID == nil
	}
	return *a.SizeID == *b.SizeID
}
