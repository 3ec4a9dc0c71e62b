package engine

import (
	"errors"
	"testing"

	"coffee-order/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredientIDs(lines []models.IngredientLine) []int {
	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.IngredientID)
	}
	return ids
}

func TestNewSession_SeedsRecipeDefaults(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	assertDecimal(t, "2", s.Quantity(espressoID))
	assertDecimal(t, "8", s.Quantity(milkID))
	assert.Len(t, s.Quantities(), 2)
	assertDecimal(t, "4.50", s.BasePrice())
}

func TestNewSession_PicksFirstSizeWhenNoneGiven(t *testing.T) {
	s := newLatteSession(t, nil)

	require.NotNil(t, s.SizeID())
	assert.Equal(t, mediumID, *s.SizeID())
	assertDecimal(t, "4.50", s.BasePrice())
}

func TestNewSession_FixedPriceProduct(t *testing.T) {
	price := dec("2.75")
	s, err := NewSession(SessionInput{
		Product:     models.Product{ID: 7, Name: "Drip Coffee", Price: &price},
		Ingredients: catalogIngredients(),
	})
	require.NoError(t, err)

	assert.Nil(t, s.SizeID())
	assertDecimal(t, "2.75", s.BasePrice())
	assert.Empty(t, s.Recipe())
	assert.Empty(t, s.CurrentRecipe())
}

func TestNewSession_Errors(t *testing.T) {
	_, err := NewSession(SessionInput{Product: models.Product{ID: 7, Name: "Mystery"}})
	assert.True(t, errors.Is(err, ErrNoBasePrice))

	_, err = NewSession(SessionInput{Product: latte(), Sizes: latteSizes(), SizeID: intPtr(999)})
	assert.True(t, errors.Is(err, ErrUnknownSize))
}

func TestAdjust_ClampsAtZero(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	for i := 0; i < 5; i++ {
		s.Adjust(espressoID, dec("-1"))
	}

	assertDecimal(t, "0", s.Quantity(espressoID))
	_, present := s.Quantities()[espressoID]
	assert.True(t, present, "recipe ingredient stays materialized at zero")
}

func TestAdjust_NoUpperBound(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	s.Adjust(espressoID, dec("40"))

	assertDecimal(t, "42", s.Quantity(espressoID))
}

func TestAdjust_AddInRemovedAtZero(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	s.Adjust(pumpkinID, dec("2"))
	assertDecimal(t, "2", s.Quantity(pumpkinID))

	s.Adjust(pumpkinID, dec("-5"))
	_, present := s.Quantities()[pumpkinID]
	assert.False(t, present)
}

func TestAdjust_UnknownIngredientIsNoop(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	before := s.Quantities()

	s.Adjust(424242, dec("1"))
	s.Adjust(retiredSyrup, dec("1"))

	assert.Equal(t, before, s.Quantities())
}

func TestAdjust_RequiredIngredientCanReachZero(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	require.True(t, s.Recipe()[espressoID].IsRequired)

	s.Adjust(espressoID, dec("-2"))

	assertDecimal(t, "0", s.Quantity(espressoID))
}

func TestViews_ReclassifyOnQuantity(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	assert.ElementsMatch(t, []int{espressoID, milkID}, ingredientIDs(s.CurrentRecipe()))
	assert.ElementsMatch(t, []int{vanillaID, pumpkinID, cinnamonID}, ingredientIDs(s.AvailableToAdd()))

	s.Adjust(espressoID, dec("-2"))
	s.Adjust(vanillaID, dec("1"))

	assert.ElementsMatch(t, []int{milkID, vanillaID}, ingredientIDs(s.CurrentRecipe()))
	assert.ElementsMatch(t, []int{espressoID, pumpkinID, cinnamonID}, ingredientIDs(s.AvailableToAdd()))
}

func TestViews_SortedByCategoryThenName(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	available := s.AvailableToAdd()

	assert.Equal(t, []int{pumpkinID, vanillaID, cinnamonID}, ingredientIDs(available))
}

func TestSelectSize_ReResolvesAndKeepsAddIns(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	s.Adjust(espressoID, dec("1"))
	s.Adjust(pumpkinID, dec("2"))

	require.NoError(t, s.SelectSize(largeID))

	assertDecimal(t, "5.25", s.BasePrice())
	assertDecimal(t, "2", s.Quantity(espressoID))
	assertDecimal(t, "12", s.Quantity(milkID))
	assertDecimal(t, "2", s.Quantity(pumpkinID))
}

func TestSelectSize_UnknownSize(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	err := s.SelectSize(999)

	assert.True(t, errors.Is(err, ErrUnknownSize))
	assert.Equal(t, mediumID, *s.SizeID())
}

func TestDispatch(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	line, err := s.Dispatch(Adjust{IngredientID: espressoID, Delta: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Nil(t, line)

	_, err = s.Dispatch(SelectSize{SizeID: largeID})
	require.NoError(t, err)

	line, err = s.Dispatch(Confirm{Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, s.Frozen())

	_, err = s.Dispatch(Adjust{IngredientID: espressoID, Delta: decimal.NewFromInt(1)})
	assert.True(t, errors.Is(err, ErrSessionFrozen))
}

func TestView(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	s.Adjust(espressoID, dec("1"))

	view := s.View()

	assert.Equal(t, "session-1", view.ID)
	assert.Equal(t, "Latte", view.ProductName)
	assertDecimal(t, "0.75", view.PriceAdjustment)
	assertDecimal(t, "5.25", view.FinalPrice)
	assert.Len(t, view.Sizes, 2)
	assert.Equal(t, mediumID, view.Sizes[0].ID)
}
